package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, SingletonID, s.ID)
	assert.Equal(t, "Asia/Jakarta", s.Timezone)
	assert.Equal(t, ThemeLight, s.Theme)
	assert.Equal(t, 30, s.SessionTimeout)
	assert.Equal(t, 90, s.PasswordExpiry)
	assert.Equal(t, 5, s.LoginAttempts)
	assert.True(t, s.EmailNotifications)
	assert.False(t, s.SMSNotifications)
	assert.False(t, s.TwoFactorAuth)
	assert.Nil(t, s.CompanyName)
}

func TestDefaults_ReturnsFreshCopy(t *testing.T) {
	a := Defaults()
	a.Theme = ThemeDark

	assert.Equal(t, ThemeLight, Defaults().Theme)
}
