package common_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/application/common"
)

type pingRequest struct {
	Message string
}

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	return request.(*pingRequest).Message, nil
}

func TestMediator_RoutesByRequestType(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](m, &pingHandler{}))

	response, err := m.Send(context.Background(), &pingRequest{Message: "dig"})
	require.NoError(t, err)
	assert.Equal(t, "dig", response)
}

func TestMediator_RejectsDuplicateRegistration(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](m, &pingHandler{}))

	err := common.RegisterHandler[*pingRequest](m, &pingHandler{})
	assert.ErrorContains(t, err, "duplicate handler registration")
}

func TestMediator_UnknownRequestFails(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), &pingRequest{})
	assert.ErrorContains(t, err, "no handler registered")
}
