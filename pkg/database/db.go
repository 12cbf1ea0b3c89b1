package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Team represents the teams table
type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Members   []Member  `gorm:"constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// Member represents one soldier in a team's roster pool
type Member struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	TeamID uint   `gorm:"index;not null" json:"team_id"`
	Name   string `gorm:"not null" json:"name"`
	Phone  string `json:"phone"`
}

// WatchList is a saved scheduling configuration for a team: the posts,
// the selected roster and the duty window
type WatchList struct {
	ID              string        `gorm:"primaryKey" json:"id"`
	TeamID          uint          `gorm:"uniqueIndex:idx_team_list;not null" json:"team_id"`
	Name            string        `gorm:"uniqueIndex:idx_team_list;not null" json:"name"`
	Start           string        `gorm:"not null" json:"start"`     // "HH:MM"
	DayStart        string        `gorm:"not null" json:"day_start"` // "HH:MM"
	DayEnd          string        `gorm:"not null" json:"day_end"`   // "HH:MM"
	DurationMinutes int           `gorm:"not null" json:"duration_minutes"`
	CreatedAt       time.Time     `json:"created_at"`
	Posts           []PostConfig  `gorm:"constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Roster          []RosterEntry `gorm:"constraint:OnDelete:CASCADE" json:"roster,omitempty"`
}

// PostConfig is one guard post of a watch list. Position preserves the
// display order, which also fixes the schedule grid's row order.
type PostConfig struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	WatchListID string `gorm:"index;not null" json:"watch_list_id"`
	Position    int    `gorm:"not null" json:"position"`
	Name        string `gorm:"not null" json:"name"`
	DayCount    int    `gorm:"not null" json:"day_count"`
	NightCount  int    `gorm:"not null" json:"night_count"`
}

// RosterEntry is one selected soldier of a watch list. Position is the
// rotation order and the only seed driving schedule determinism.
type RosterEntry struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	WatchListID string `gorm:"index;not null" json:"watch_list_id"`
	Position    int    `gorm:"not null" json:"position"`
	Name        string `gorm:"not null" json:"name"`
}

// ScheduleRecord is a persisted chosen schedule for a watch list
type ScheduleRecord struct {
	ID          string              `gorm:"primaryKey" json:"id"`
	WatchListID string              `gorm:"index;not null" json:"watch_list_id"`
	Algorithm   string              `gorm:"not null" json:"algorithm"`
	CreatedAt   time.Time           `json:"created_at"`
	Rows        []ScheduleRowRecord `gorm:"constraint:OnDelete:CASCADE" json:"rows,omitempty"`
}

// ScheduleRowRecord is one time slot of a persisted schedule. Cells is
// the post -> assigned-names mapping serialized as JSON.
type ScheduleRowRecord struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	ScheduleRecordID string `gorm:"index;not null" json:"schedule_record_id"`
	Position         int    `gorm:"not null" json:"position"`
	Time             string `gorm:"not null" json:"time"` // "HH:MM"
	Cells            string `gorm:"not null" json:"cells"`
}

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	KeyID          uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date           string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount   int    `gorm:"default:0" json:"request_count"`
	TotalSchedules int    `gorm:"default:0" json:"total_schedules"`
	TotalSoldiers  int    `gorm:"default:0" json:"total_soldiers"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "watchlist.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(
		&Team{}, &Member{},
		&WatchList{}, &PostConfig{}, &RosterEntry{},
		&ScheduleRecord{}, &ScheduleRowRecord{},
		&APIKey{}, &APIUsage{}, &MasterUser{},
	)

	return db
}
