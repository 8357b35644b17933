package commands_test

import (
	"testing"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand_ValidData(t *testing.T) {
	// Arrange
	name := "Alice Johnson"

	// Act
	cmd, err := commands.NewCreateCustomerCommand(&name, 34)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", cmd.Name())
	assert.Equal(t, 34, cmd.Age())
	require.NoError(t, cmd.CustomerID().Validate())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateCustomerCommand_NilName(t *testing.T) {
	// Act
	_, err := commands.NewCreateCustomerCommand(nil, 34)

	// Assert
	require.Error(t, err)

	var validationErr *validation.Error
	require.ErrorAs(t, err, &validationErr)
	assert.True(t, validationErr.Has("name", validation.MustNotBeNull))
	assert.True(t, validationErr.Has("name", validation.MustNotBeEmpty))
}

func TestNewCreateCustomerCommand_AllViolationsReported(t *testing.T) {
	// A request with every attribute broken must report every violation in a
	// single error rather than stopping at the first one.
	name := ""

	// Act
	_, err := commands.NewCreateCustomerCommand(&name, -5)

	// Assert
	require.Error(t, err)

	var validationErr *validation.Error
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"age", "name"}, validationErr.Attributes())
	assert.True(t, validationErr.Has("name", validation.MustNotBeEmpty))
	assert.True(t, validationErr.Has("age", validation.MustBePositive))
}

func TestCreateCustomerCommand_Validate_NotConstructed(t *testing.T) {
	// Arrange
	var cmd commands.CreateCustomerCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
}

func TestNewCreateCustomerCommand_GeneratesUniqueIDs(t *testing.T) {
	// Arrange
	name := "Alice Johnson"

	cmd1, err := commands.NewCreateCustomerCommand(&name, 34)
	require.NoError(t, err)

	cmd2, err := commands.NewCreateCustomerCommand(&name, 34)
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, cmd1.CustomerID(), cmd2.CustomerID())
}
