package cmd

import (
	"errors"
	"testing"

	"github.com/bnema/owdragon-cli/internal/application"
	"github.com/bnema/owdragon-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusSpinnerTracksAccountProgress(t *testing.T) {
	var model tea.Model = newStatusSpinnerModel(3, nil)
	assert.Contains(t, model.View(), "Checking accounts... 0/3")

	model, _ = model.Update(accountCheckedMsg{done: 1, total: 3, status: application.AccountStatus{ID: "init-1"}})
	assert.Contains(t, model.View(), "Checking accounts... 1/3 (last: init-1)")

	model, _ = model.Update(accountCheckedMsg{done: 2, total: 3, status: application.AccountStatus{ID: "init-2", Err: domain.ErrAuthFailed}})
	assert.Contains(t, model.View(), "Checking accounts... 2/3, 1 failed (last: init-2 failed)")

	checkErr := errors.New("boom")
	model, cmd := model.Update(statusCheckDoneMsg{err: checkErr})
	require.NotNil(t, cmd)
	assert.Empty(t, model.View())

	final, ok := model.(statusSpinnerModel)
	require.True(t, ok)
	assert.ErrorIs(t, final.err, checkErr)
}
