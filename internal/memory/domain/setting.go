package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConfigKey logical key of the singleton setting document
const ConfigKey = "config"

// ErrNotConfigured no setting document seeded yet
var ErrNotConfigured = errors.New("not configured")

// Setting 解鎖設定, 整個服務只有一筆
type Setting struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" yaml:"-"`
	Key          string             `bson:"key" json:"key" yaml:"-"`
	ReleaseTime  time.Time          `bson:"release_time" json:"release_time" yaml:"release_time"`
	UnlockCode   string             `bson:"unlock_code" json:"unlock_code,omitempty" yaml:"unlock_code"`
	FinalMessage string             `bson:"final_message" json:"final_message" yaml:"final_message"`
	MusicURL     string             `bson:"music_url" json:"music_url" yaml:"music_url"`
}

// Public copy without the unlock code
func (s Setting) Public() Setting {
	s.UnlockCode = ""
	return s
}

// IsReleased check release time passed
func (s *Setting) IsReleased(now time.Time) bool {
	return !now.Before(s.ReleaseTime)
}
