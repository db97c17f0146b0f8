package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	base := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		want     int
	}{
		{"same instant", base, 0},
		{"checkout before checkin", base.Add(-time.Hour), 0},
		{"exactly one day", base.AddDate(0, 0, 1), 1},
		{"exactly two days", base.AddDate(0, 0, 2), 2},
		{"partial day rounds up", base.Add(30 * time.Hour), 2},
		{"a few hours rounds up to one", base.Add(6 * time.Hour), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(base, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	base := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(1000000), TotalPrice(base, base.AddDate(0, 0, 2), 500000))
	assert.Equal(t, int64(0), TotalPrice(base, base, 500000))
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "1h 0m", FormatRemaining(time.Hour))
	assert.Equal(t, "3h 12m", FormatRemaining(3*time.Hour+12*time.Minute))
	assert.Equal(t, "0h 59m", FormatRemaining(59*time.Minute+30*time.Second))
	assert.Equal(t, "Expired", FormatRemaining(0))
	assert.Equal(t, "Expired", FormatRemaining(-time.Minute))
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 500.000", FormatRupiah(500000))
	assert.Equal(t, "Rp 1.000.000", FormatRupiah(1000000))
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 999", FormatRupiah(999))
	assert.Equal(t, "-Rp 1.500", FormatRupiah(-1500))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.co.id"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("user@nodot"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("081234567890"))
	assert.True(t, ValidPhone("+62812-3456-7890"))
	assert.True(t, ValidPhone("62 812 3456 7890"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("abc"))
	assert.False(t, ValidPhone(""))
}
