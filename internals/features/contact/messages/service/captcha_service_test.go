package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCaptchaChallengeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		ch := NewCaptchaChallenge()
		assert.NotEmpty(t, ch.CaptchaID)
		assert.GreaterOrEqual(t, ch.Num1, 1)
		assert.LessOrEqual(t, ch.Num1, 10)
		assert.GreaterOrEqual(t, ch.Num2, 1)
		assert.LessOrEqual(t, ch.Num2, 10)
	}
}

func TestVerifyCaptchaCorrectAnswer(t *testing.T) {
	ch := NewCaptchaChallenge()
	answer := strconv.Itoa(ch.Num1 + ch.Num2)
	assert.True(t, VerifyCaptcha(ch.CaptchaID, answer))
}

func TestVerifyCaptchaTrimsAnswer(t *testing.T) {
	ch := NewCaptchaChallenge()
	answer := "  " + strconv.Itoa(ch.Num1+ch.Num2) + " "
	assert.True(t, VerifyCaptcha(ch.CaptchaID, answer))
}

func TestVerifyCaptchaSingleUse(t *testing.T) {
	ch := NewCaptchaChallenge()
	answer := strconv.Itoa(ch.Num1 + ch.Num2)
	require.True(t, VerifyCaptcha(ch.CaptchaID, answer))
	// tantangan sudah hangus, jawaban benar pun ditolak
	assert.False(t, VerifyCaptcha(ch.CaptchaID, answer))
}

func TestVerifyCaptchaWrongAnswerBurnsChallenge(t *testing.T) {
	ch := NewCaptchaChallenge()
	require.False(t, VerifyCaptcha(ch.CaptchaID, "9999"))
	// salah sekali → challenge ikut hangus
	assert.False(t, VerifyCaptcha(ch.CaptchaID, strconv.Itoa(ch.Num1+ch.Num2)))
}

func TestVerifyCaptchaUnknownID(t *testing.T) {
	assert.False(t, VerifyCaptcha("tidak-ada", "5"))
}
