package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-api/utils/cache"
)

func newLoginApp(t *testing.T) (*fiber.App, *miniredis.Miniredis, string) {
	t.Helper()

	mr := miniredis.RunT(t)
	rc, err := cache.NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })

	bfp := NewBruteForceProtection(rc)
	require.NotNil(t, bfp)

	app := fiber.New()
	app.Post("/login", bfp.CheckLockout(), func(c *fiber.Ctx) error {
		if c.Query("ok") == "1" {
			bfp.RecordSuccessfulAttempt(c)
			return c.SendStatus(fiber.StatusOK)
		}
		bfp.RecordFailedAttempt(c)
		return c.SendStatus(fiber.StatusUnauthorized)
	})
	app.Post("/fail", func(c *fiber.Ctx) error {
		bfp.RecordFailedAttempt(c)
		return c.SendStatus(fiber.StatusUnauthorized)
	})
	app.Get("/ip", func(c *fiber.Ctx) error {
		return c.SendString(c.IP())
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ip", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	ip, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return app, mr, string(ip)
}

func post(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestLockoutAfterFiveFailures(t *testing.T) {
	app, mr, ip := newLoginApp(t)

	for i := 1; i <= 5; i++ {
		assert.Equal(t, http.StatusUnauthorized, post(t, app, "/login").StatusCode, "attempt %d", i)
	}
	assert.True(t, mr.Exists(lockKey(ip)))

	resp := post(t, app, "/login?ok=1")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "120", resp.Header.Get("Retry-After"))

	// once the lock expires a correct login goes through and clears the counter
	mr.FastForward(2*time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, post(t, app, "/login?ok=1").StatusCode)
	assert.False(t, mr.Exists(attemptKey(ip)))
}

func TestSuccessfulLoginResetsCounter(t *testing.T) {
	app, mr, ip := newLoginApp(t)

	for i := 0; i < 4; i++ {
		post(t, app, "/login")
	}
	got, err := mr.Get(attemptKey(ip))
	require.NoError(t, err)
	assert.Equal(t, "4", got)

	assert.Equal(t, http.StatusOK, post(t, app, "/login?ok=1").StatusCode)
	assert.False(t, mr.Exists(attemptKey(ip)))
	assert.False(t, mr.Exists(lockKey(ip)))

	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusUnauthorized, post(t, app, "/login").StatusCode)
	}
	assert.False(t, mr.Exists(lockKey(ip)))
	assert.Equal(t, http.StatusUnauthorized, post(t, app, "/login").StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, post(t, app, "/login").StatusCode)
}

func TestAttemptWindowExpires(t *testing.T) {
	app, mr, ip := newLoginApp(t)

	post(t, app, "/login")
	assert.Equal(t, 15*time.Minute, mr.TTL(attemptKey(ip)))

	mr.FastForward(15*time.Minute + time.Second)
	assert.False(t, mr.Exists(attemptKey(ip)))
}

func TestProgressiveLockDurations(t *testing.T) {
	app, mr, ip := newLoginApp(t)

	want := map[int]time.Duration{
		5:  2 * time.Minute,
		9:  2 * time.Minute,
		10: time.Hour,
		24: time.Hour,
		25: 24 * time.Hour,
		30: 24 * time.Hour,
	}

	for attempt := 1; attempt <= 30; attempt++ {
		post(t, app, "/fail")

		if attempt < 5 {
			assert.False(t, mr.Exists(lockKey(ip)), "attempt %d", attempt)
			continue
		}
		if d, ok := want[attempt]; ok {
			assert.Equal(t, d, mr.TTL(lockKey(ip)), "attempt %d", attempt)
		}
	}

	resp := post(t, app, "/login")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, strconv.Itoa(int((24 * time.Hour).Seconds())), resp.Header.Get("Retry-After"))
}

func TestNilProtectionIsNoop(t *testing.T) {
	var bfp *BruteForceProtection
	assert.Nil(t, NewBruteForceProtection(nil))

	app := fiber.New()
	app.Post("/login", bfp.CheckLockout(), func(c *fiber.Ctx) error {
		bfp.RecordFailedAttempt(c)
		bfp.RecordSuccessfulAttempt(c)
		return c.SendStatus(fiber.StatusUnauthorized)
	})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusUnauthorized, post(t, app, "/login").StatusCode)
	}
}
