package state

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	require.NotNil(t, env)
	require.False(t, env.start.IsZero())
	require.NotNil(t, env.Log)
	require.Equal(t, os.Stdout, env.Stdout)

	// the same environment is returned every time
	require.Same(t, env, EnvFromContext(ctx))
}

func TestEnvFromContextPanics(t *testing.T) {
	require.Panics(t, func() {
		EnvFromContext(context.Background())
	})
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	require.GreaterOrEqual(t, env.Uptime(), time.Second)
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	env := &LocalEnv{Log: zap.New(core)}

	env.RedirectStdLog()
	log.Print("from standard library")
	env.RestoreStdLog()

	require.Equal(t, 1, logs.FilterMessage("from standard library").Len())

	// restoring twice is harmless
	env.RestoreStdLog()
}

func TestLocalEnv_NilLog(t *testing.T) {
	env := &LocalEnv{}
	env.RedirectStdLog()
	env.RestoreStdLog()
	require.Nil(t, env.restoreStdLog)
}
