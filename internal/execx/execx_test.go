package execx

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLocal() (*Local, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	l := &Local{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return l, &stdout, &stderr
}

func TestLocal_Run_Success(t *testing.T) {
	l, stdout, _ := newTestLocal()

	res := l.Run(context.Background(), "sh", "-c", "echo hello")

	assert.Equal(t, 0, res.Code)
	assert.NoError(t, res.Err)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestLocal_Run_PropagatesExitCode(t *testing.T) {
	l, _, _ := newTestLocal()

	res := l.Run(context.Background(), "sh", "-c", "exit 7")

	assert.Equal(t, 7, res.Code)
	assert.Error(t, res.Err)
}

func TestLocal_Run_CommandNotFound(t *testing.T) {
	l, _, _ := newTestLocal()

	res := l.Run(context.Background(), "definitely-not-a-real-binary-4f2a")

	assert.Equal(t, 1, res.Code)
	assert.Error(t, res.Err)
}

func TestLocal_Run_StreamsStderr(t *testing.T) {
	l, stdout, stderr := newTestLocal()

	res := l.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 2")

	assert.Equal(t, 2, res.Code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExitCode_Nil(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
}
