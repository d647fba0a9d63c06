package domain

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryType variant tag of a memory entry
type MemoryType string

const (
	// MemoryTypePhoto image_url + caption
	MemoryTypePhoto MemoryType = "photo"
	// MemoryTypeChat chat_data transcript
	MemoryTypeChat MemoryType = "chat"
	// MemoryTypeVoice voice note stand-in, chat_data transcript
	MemoryTypeVoice MemoryType = "voice"
	// MemoryTypeCollage collage_data image list
	MemoryTypeCollage MemoryType = "collage"
)

// Sender chat line author
type Sender string

const (
	// SenderMe story owner
	SenderMe Sender = "me"
	// SenderHer the other side
	SenderHer Sender = "her"
)

var (
	// ErrInvalidMemory memory fields do not match its type
	ErrInvalidMemory = errors.New("invalid memory")
	// ErrDuplicateOrder two memories share an order
	ErrDuplicateOrder = errors.New("duplicate memory order")
)

// Memory 一個故事片段. 依 Type 只帶對應欄位, 見 Validate
type Memory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" yaml:"-"`
	Order       int                `bson:"order" json:"order" yaml:"order"`
	Type        MemoryType         `bson:"type" json:"type" yaml:"type"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty" yaml:"image_url"`
	Caption     string             `bson:"caption,omitempty" json:"caption,omitempty" yaml:"caption"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty" yaml:"date"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty" yaml:"location"`
	ChatData    []ChatLine         `bson:"chat_data,omitempty" json:"chat_data,omitempty" yaml:"chat_data"`
	CollageData []string           `bson:"collage_data,omitempty" json:"collage_data,omitempty" yaml:"collage_data"`
}

// ChatLine one bubble of a chat or voice memory
type ChatLine struct {
	Sender Sender `bson:"sender" json:"sender" yaml:"sender"`
	Text   string `bson:"text" json:"text" yaml:"text"`
	Time   string `bson:"time" json:"time" yaml:"time"`
	Quoted string `bson:"quoted,omitempty" json:"quoted,omitempty" yaml:"quoted"`
}

// Normalize apply defaults, an untyped memory is a photo
func (m *Memory) Normalize() {
	if m.Type == "" {
		m.Type = MemoryTypePhoto
	}
}

// Validate check the variant carries only its own payload
func (m *Memory) Validate() error {
	switch m.Type {
	case MemoryTypePhoto:
		if m.ImageURL == "" {
			return m.invalid("photo needs image_url")
		}
		if len(m.ChatData) > 0 || len(m.CollageData) > 0 {
			return m.invalid("photo carries chat_data or collage_data")
		}
	case MemoryTypeChat, MemoryTypeVoice:
		if len(m.ChatData) == 0 {
			return m.invalid(fmt.Sprintf("%s needs chat_data", m.Type))
		}
		if m.ImageURL != "" || len(m.CollageData) > 0 {
			return m.invalid(fmt.Sprintf("%s carries image_url or collage_data", m.Type))
		}
		for i, line := range m.ChatData {
			if line.Sender != SenderMe && line.Sender != SenderHer {
				return m.invalid(fmt.Sprintf("chat_data[%d] unknown sender %q", i, line.Sender))
			}
		}
	case MemoryTypeCollage:
		if len(m.CollageData) == 0 {
			return m.invalid("collage needs collage_data")
		}
		if m.ImageURL != "" || len(m.ChatData) > 0 {
			return m.invalid("collage carries image_url or chat_data")
		}
	default:
		return m.invalid(fmt.Sprintf("unknown type %q", m.Type))
	}
	return nil
}

func (m *Memory) invalid(reason string) error {
	return fmt.Errorf("%w: order %d: %s", ErrInvalidMemory, m.Order, reason)
}

// ValidateStory normalize and validate a whole batch, orders must be unique
func ValidateStory(memories []Memory) error {
	seen := make(map[int]struct{}, len(memories))
	for i := range memories {
		memories[i].Normalize()
		if err := memories[i].Validate(); err != nil {
			return err
		}
		if _, ok := seen[memories[i].Order]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateOrder, memories[i].Order)
		}
		seen[memories[i].Order] = struct{}{}
	}
	return nil
}
