package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/application/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFallback_StopsAtFirstSuccess(t *testing.T) {
	first := mocks.NewMockNotifier(t)
	second := mocks.NewMockNotifier(t)
	first.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("no dbus")).Once()
	second.EXPECT().Notify(mock.Anything, port.Notification{Title: "Download Complete"}).Return(nil).Once()

	err := Fallback{first, nil, second}.Notify(context.Background(), port.Notification{Title: "Download Complete"})
	assert.NoError(t, err)
}

func TestFallback_AllFail(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	first := mocks.NewMockNotifier(t)
	second := mocks.NewMockNotifier(t)
	first.EXPECT().Notify(mock.Anything, mock.Anything).Return(errA).Once()
	second.EXPECT().Notify(mock.Anything, mock.Anything).Return(errB).Once()

	err := Fallback{first, second}.Notify(context.Background(), port.Notification{})
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard{}.Notify(context.Background(), port.Notification{Title: "x"}))
}

func TestAsync_DoesNotWaitForDelivery(t *testing.T) {
	release := make(chan struct{})
	delivered := make(chan port.Notification, 1)
	next := mocks.NewMockNotifier(t)
	next.EXPECT().Notify(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n port.Notification) {
			<-release
			delivered <- n
		}).
		Return(errors.New("bus timeout")).Once()

	err := Async{Next: next}.Notify(context.Background(), port.Notification{Title: "Download Failed"})
	require.NoError(t, err)

	close(release)
	select {
	case n := <-delivered:
		assert.Equal(t, "Download Failed", n.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not handed to the next sink")
	}
}

func TestAsync_NilNext(t *testing.T) {
	assert.NoError(t, Async{}.Notify(context.Background(), port.Notification{}))
}
