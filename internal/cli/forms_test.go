package cli

import (
	"testing"

	"github.com/alexanderramin/gatetrack/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestValidateDay(t *testing.T) {
	assert.NoError(t, validateDay("2025-12-31"))
	assert.Error(t, validateDay("31-12-2025"))
	assert.Error(t, validateDay(""))
}

func TestConfirmerSelection(t *testing.T) {
	app := &App{}
	assert.Nil(t, app.confirmer(false), "non-interactive without --yes never prompts")
	assert.True(t, app.confirmer(true).Confirm(service.ResetPrompt))

	app.IsInteractive = func() bool { return true }
	assert.IsType(t, huhConfirmer{}, app.confirmer(false))

	custom := service.ConfirmFunc(func(string) bool { return false })
	app.Confirm = custom
	assert.False(t, app.confirmer(false).Confirm("?"))
	assert.True(t, app.confirmer(true).Confirm("?"), "--yes wins over a configured confirmer")
}

func TestForms_Build(t *testing.T) {
	value := "2025-11-29"
	assert.NotNil(t, dateForm(&value))

	var ok bool
	assert.NotNil(t, confirmForm(service.ResetPrompt, &ok))
	assert.NotNil(t, formTheme())
}
