package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestUserFormatter_EmojiPrefix(t *testing.T) {
	f := &UserFormatter{}

	entry := &logrus.Entry{
		Message: "Creating virtual environment",
		Data:    logrus.Fields{"emoji": "🚀"},
	}

	out, err := f.Format(entry)
	assert.NoError(t, err)
	assert.Equal(t, "🚀 Creating virtual environment\n", string(out))
}

func TestUserFormatter_NoEmoji(t *testing.T) {
	f := &UserFormatter{}

	entry := &logrus.Entry{Message: "plain message", Data: logrus.Fields{}}

	out, err := f.Format(entry)
	assert.NoError(t, err)
	assert.Equal(t, "plain message\n", string(out))
}

func TestOpFormatter_LevelAndFields(t *testing.T) {
	f := &OpFormatter{EnableColors: false}

	entry := &logrus.Entry{
		Message: "step finished",
		Level:   logrus.InfoLevel,
		Data:    logrus.Fields{"task": "install", "step": 2},
	}

	out, err := f.Format(entry)
	assert.NoError(t, err)
	assert.Equal(t, "INFO: step finished step=2 task=install\n", string(out))
}

func TestSetup_QuietSuppressesInfo(t *testing.T) {
	Setup(false, false, true)
	defer Setup(false, false, false)

	var userBuf, opBuf bytes.Buffer
	SetOutput(&userBuf, &opBuf)

	User.Info("should not appear")
	Op.Info("should not appear either")
	User.Error("errors still show")

	assert.Empty(t, opBuf.String())
	assert.Contains(t, userBuf.String(), "errors still show")
	assert.NotContains(t, userBuf.String(), "should not appear")
}

func TestSetup_VerboseEnablesDebug(t *testing.T) {
	Setup(true, false, false)
	defer Setup(false, false, false)

	var userBuf, opBuf bytes.Buffer
	SetOutput(&userBuf, &opBuf)

	Op.Debug("spawning subprocess")

	assert.Contains(t, opBuf.String(), "spawning subprocess")
}
