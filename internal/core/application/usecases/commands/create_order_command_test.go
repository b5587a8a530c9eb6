package commands_test

import (
	"testing"

	"ordermanager/internal/core/application/usecases/commands"
	"ordermanager/internal/core/domain/model/order"
	"ordermanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(validDetails(), order.Unknown)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, validDetails(), cmd.Details())
	assert.Equal(t, order.Unknown, cmd.Status())
}

func TestNewCreateOrderCommand_ExplicitStatus(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(validDetails(), order.Confirmed)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, cmd.Status())
}

func TestNewCreateOrderCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(validDetails(), order.Status("LOST"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrEnumValueIsInvalid)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
