package main

import (
	"context"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwaitStop_SignalSetsExitCode(t *testing.T) {
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	assert.Equal(t, 128+int(syscall.SIGTERM), awaitStop(context.Background(), quit))
}

func TestAwaitStop_SignalWithLiveContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGINT

	assert.Equal(t, 128+int(syscall.SIGINT), awaitStop(ctx, quit))
}

func TestAwaitStop_ServerFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 1, awaitStop(ctx, make(chan os.Signal)))
}
