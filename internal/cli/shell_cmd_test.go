package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShellArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "single word",
			input: "progress",
			want:  []string{"progress"},
		},
		{
			name:  "double quoted exercise",
			input: `log "Underwater Basket Weaving" 45`,
			want:  []string{"log", "Underwater Basket Weaving", "45"},
		},
		{
			name:  "single quoted name",
			input: "user add 'Mary Jane'",
			want:  []string{"user", "add", "Mary Jane"},
		},
		{
			name:  "flag with quoted value",
			input: `export --out "my history.txt"`,
			want:  []string{"export", "--out", "my history.txt"},
		},
		{
			name:  "escaped space",
			input: `log Power\ Yoga 30`,
			want:  []string{"log", "Power Yoga", "30"},
		},
		{
			name:  "empty quoted arg",
			input: `log "" 30`,
			want:  []string{"log", "", "30"},
		},
		{
			name:    "unterminated quote",
			input:   `user add "oops`,
			wantErr: true,
		},
		{
			name:    "unterminated escape",
			input:   `log Running\`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := splitShellArgs(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShellModel_DispatchesToSessionCommands(t *testing.T) {
	app := testApp(t)
	m := newShellModel(app)

	m.executeCommand(`user add "Mary Jane"`)
	m.executeCommand(`log "Power Yoga" 30`)

	u, err := app.Session.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mary Jane", u.Name)
	assert.Equal(t, "Mary Jane", m.currentName)

	log, err := app.Tracker.History(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, 1, log.Len())
	assert.Equal(t, "Power Yoga - 30 mins, 36 cal", log.Records()[0].String())
}

func TestShellModel_HelpAndShell(t *testing.T) {
	m := newShellModel(testApp(t))

	out, cmd := m.executeCommand("help")
	assert.Nil(t, cmd)
	assert.Contains(t, out, "WORKOUTS")
	assert.Contains(t, out, "log EXERCISE MINUTES")

	out, _ = m.executeCommand("shell")
	assert.Contains(t, out, "Already in shell mode.")
}

func TestShellModel_GoalsWithArgumentsSkipsWizard(t *testing.T) {
	m := newShellModel(testApp(t))
	m.executeCommand("user add Ann")

	out, _ := m.executeCommand("goals 10 10")
	assert.Equal(t, modePrompt, m.mode)
	assert.Contains(t, out, "not met")
}

func TestWizardValidators(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateMinutes("0"))
	assert.NoError(t, validateMinutes(" 100000 "))
	assert.Error(t, validateMinutes("100001"))
	assert.Error(t, validateMinutes("6000000000000"))
	assert.Error(t, validateMinutes("-1"))
	assert.Error(t, validateMinutes("soon"))

	assert.NoError(t, validateTarget("1000000000"))
	assert.Error(t, validateTarget("1000000001"))
	assert.Error(t, validateTarget(""))
}
