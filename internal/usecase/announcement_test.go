//go:build unit

package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"antriqu/internal/pkg/errs"
	"antriqu/internal/usecase"
	"antriqu/tests/common/builder"
	usecasemock "antriqu/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnnouncer(t *testing.T) {
	called := builder.NewTicketBuilder().WithNumber("B-004").CallingAt(2, time.Minute).BuildDomain()

	newAnnouncer := func(t *testing.T) (usecase.Announcer, *usecasemock.MockSpeechProducer, *usecasemock.MockAnnouncementSink) {
		ctrl := gomock.NewController(t)
		speech := usecasemock.NewMockSpeechProducer(ctrl)
		sink := usecasemock.NewMockAnnouncementSink(ctrl)
		return usecase.NewAnnouncer(speech, sink, slog.New(slog.DiscardHandler), time.Second), speech, sink
	}

	t.Run("delivers synthesized audio", func(t *testing.T) {
		announcer, speech, sink := newAnnouncer(t)
		text := "Nomor Antrian B - 0 0 4, silakan menuju ke loket 2"

		speech.EXPECT().Synthesize(gomock.Any(), text).Return([]byte("pcm"), nil).Times(1)
		sink.EXPECT().Deliver(gomock.Any(), usecase.Announcement{
			TicketID:      called.ID(),
			DisplayNumber: "B-004",
			Counter:       2,
			Text:          text,
			Audio:         []byte("pcm"),
		}).Return(nil).Times(1)

		announcer.Announce(called, false)
		require.NoError(t, announcer.Close(context.Background()))
	})

	t.Run("falls back to on-device speech", func(t *testing.T) {
		tests := []struct {
			name  string
			audio []byte
			err   error
		}{
			{name: "speech unavailable", err: errs.ErrSpeechUnavailable},
			{name: "empty audio"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				announcer, speech, sink := newAnnouncer(t)

				speech.EXPECT().Synthesize(gomock.Any(), gomock.Any()).Return(tt.audio, tt.err).Times(1)
				sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a usecase.Announcement) error {
					assert.True(t, a.Fallback)
					assert.Equal(t, "id-ID", a.Lang)
					assert.Empty(t, a.Audio)
					assert.True(t, a.Recall)
					assert.Equal(t, "Panggilan ulang, Nomor Antrian B - 0 0 4, silakan menuju ke loket 2", a.Text)
					return nil
				}).Times(1)

				announcer.Announce(called, true)
				require.NoError(t, announcer.Close(context.Background()))
			})
		}
	})

	t.Run("sink failure is swallowed", func(t *testing.T) {
		announcer, speech, sink := newAnnouncer(t)
		speech.EXPECT().Synthesize(gomock.Any(), gomock.Any()).Return([]byte("pcm"), nil)
		sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(assert.AnError)

		announcer.Announce(called, false)
		assert.NoError(t, announcer.Close(context.Background()))
	})

	t.Run("announcements after close are dropped", func(t *testing.T) {
		announcer, _, _ := newAnnouncer(t)
		require.NoError(t, announcer.Close(context.Background()))

		announcer.Announce(called, false)
	})

	t.Run("close gives up when the context ends", func(t *testing.T) {
		announcer, speech, sink := newAnnouncer(t)
		release := make(chan struct{})
		speech.EXPECT().Synthesize(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) ([]byte, error) {
			<-release
			return nil, errs.ErrSpeechUnavailable
		})
		sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)

		announcer.Announce(called, false)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, announcer.Close(ctx), context.DeadlineExceeded)

		close(release)
		assert.NoError(t, announcer.Close(context.Background()))
	})
}
