package service

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Tantangan aritmetika sederhana, disimpan server-side dan sekali pakai.
// Angka 1..10 mengikuti tampilan form "What is X + Y?".
var captchaStore = gocache.New(10*time.Minute, 15*time.Minute)

type CaptchaChallenge struct {
	CaptchaID string `json:"captcha_id"`
	Num1      int    `json:"num1"`
	Num2      int    `json:"num2"`
}

func NewCaptchaChallenge() CaptchaChallenge {
	ch := CaptchaChallenge{
		CaptchaID: uuid.NewString(),
		Num1:      rand.Intn(10) + 1,
		Num2:      rand.Intn(10) + 1,
	}
	captchaStore.Set(ch.CaptchaID, ch.Num1+ch.Num2, gocache.DefaultExpiration)
	return ch
}

// VerifyCaptcha: jawaban dibandingkan sebagai string angka, dan challenge
// langsung hangus apa pun hasilnya.
func VerifyCaptcha(captchaID, answer string) bool {
	raw, found := captchaStore.Get(captchaID)
	if found {
		captchaStore.Delete(captchaID)
	}
	if !found {
		return false
	}
	expected, ok := raw.(int)
	if !ok {
		return false
	}
	return strings.TrimSpace(answer) == strconv.Itoa(expected)
}
