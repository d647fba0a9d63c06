package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Validate(t *testing.T) {
	chat := []ChatLine{{Sender: SenderMe, Text: "hi", Time: "7:20 am"}}

	tests := []struct {
		name    string
		memory  Memory
		wantErr bool
	}{
		{"photo", Memory{Order: 1, Type: MemoryTypePhoto, ImageURL: "a.jpg", Caption: "c"}, false},
		{"photo without image", Memory{Order: 1, Type: MemoryTypePhoto}, true},
		{"photo with chat", Memory{Order: 1, Type: MemoryTypePhoto, ImageURL: "a.jpg", ChatData: chat}, true},
		{"chat", Memory{Order: 2, Type: MemoryTypeChat, ChatData: chat, Date: "6 Juli 2025"}, false},
		{"chat empty", Memory{Order: 2, Type: MemoryTypeChat}, true},
		{"chat unknown sender", Memory{Order: 2, Type: MemoryTypeChat, ChatData: []ChatLine{{Sender: "them", Text: "x"}}}, true},
		{"voice with caption", Memory{Order: 3, Type: MemoryTypeVoice, Caption: "c", ChatData: chat}, false},
		{"voice with image", Memory{Order: 3, Type: MemoryTypeVoice, ImageURL: "a.jpg", ChatData: chat}, true},
		{"collage", Memory{Order: 4, Type: MemoryTypeCollage, CollageData: []string{"1.jpg", "2.jpg"}}, false},
		{"collage empty", Memory{Order: 4, Type: MemoryTypeCollage}, true},
		{"unknown type", Memory{Order: 5, Type: "video", ImageURL: "a.mp4"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.memory.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMemory)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStory(t *testing.T) {
	story := []Memory{
		{Order: 2, ImageURL: "b.jpg"},
		{Order: 1, Type: MemoryTypeCollage, CollageData: []string{"x"}},
	}
	assert.NoError(t, ValidateStory(story))
	// untyped defaults to photo
	assert.Equal(t, MemoryTypePhoto, story[0].Type)

	dup := []Memory{
		{Order: 1, ImageURL: "a.jpg"},
		{Order: 1, ImageURL: "b.jpg"},
	}
	assert.ErrorIs(t, ValidateStory(dup), ErrDuplicateOrder)
}

func TestSetting_PublicAndRelease(t *testing.T) {
	release := time.Date(2026, 2, 8, 2, 0, 0, 0, time.UTC)
	s := Setting{Key: ConfigKey, UnlockCode: "1234", FinalMessage: "done", ReleaseTime: release}

	pub := s.Public()
	assert.Empty(t, pub.UnlockCode)
	assert.Equal(t, "done", pub.FinalMessage)
	assert.Equal(t, "1234", s.UnlockCode)

	assert.False(t, s.IsReleased(release.Add(-time.Second)))
	assert.True(t, s.IsReleased(release))
}
