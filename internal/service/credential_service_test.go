package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/herupa/herupa-go-api/internal/dto"
	"github.com/herupa/herupa-go-api/pkg/ai"
)

type verifyGateway struct {
	err      error
	verified []string
}

func (g *verifyGateway) Complete(context.Context, string, string, []ai.Message) (string, error) {
	return "", nil
}

func (g *verifyGateway) Verify(_ context.Context, key string) error {
	g.verified = append(g.verified, key)
	return g.err
}

func newTestCredentialService(gateway ai.Client, creds *stubCredentials) CredentialService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewCredentialService(creds, gateway, validate, testLogger())
}

func TestCredentialSave(t *testing.T) {
	gateway := &verifyGateway{}
	creds := &stubCredentials{}
	svc := newTestCredentialService(gateway, creds)

	key := "gsk_live_abcdefghijklmnopqrstuvwx"
	resp, err := svc.Save(context.Background(), dto.SaveCredentialRequest{Key: "  " + key + "  "})
	require.NoError(t, err)

	require.True(t, resp.Configured)
	require.Equal(t, key, creds.key)
	require.Equal(t, []string{key}, gateway.verified)

	require.True(t, strings.HasPrefix(resp.MaskedKey, "gsk_live"))
	require.True(t, strings.HasSuffix(resp.MaskedKey, "uvwx"))
	require.NotContains(t, resp.MaskedKey, "abcdefghijklmnopqrst")
	require.Contains(t, resp.MaskedKey, strings.Repeat("*", 18))
}

func TestCredentialSaveRejectsWrongPrefix(t *testing.T) {
	gateway := &verifyGateway{}
	creds := &stubCredentials{}
	svc := newTestCredentialService(gateway, creds)

	_, err := svc.Save(context.Background(), dto.SaveCredentialRequest{Key: "sk-not-a-groq-key"})
	require.ErrorIs(t, err, ErrCredentialFormat)
	require.Empty(t, gateway.verified)
	require.Empty(t, creds.key)
}

func TestCredentialSaveRejectsEmptyKey(t *testing.T) {
	svc := newTestCredentialService(&verifyGateway{}, &stubCredentials{})

	_, err := svc.Save(context.Background(), dto.SaveCredentialRequest{})
	require.Error(t, err)
}

func TestCredentialSaveVerificationFailure(t *testing.T) {
	gateway := &verifyGateway{err: errors.New("401 unauthorized")}
	creds := &stubCredentials{}
	svc := newTestCredentialService(gateway, creds)

	_, err := svc.Save(context.Background(), dto.SaveCredentialRequest{Key: "gsk_invalid_key_material"})
	require.ErrorIs(t, err, ErrCredentialRejected)
	require.Empty(t, creds.key)
}

func TestCredentialStatus(t *testing.T) {
	creds := &stubCredentials{}
	svc := newTestCredentialService(&verifyGateway{}, creds)

	empty, err := svc.Status(context.Background())
	require.NoError(t, err)
	require.False(t, empty.Configured)
	require.Empty(t, empty.MaskedKey)

	creds.key = "gsk_live_abcdefghijklmnopqrstuvwx"
	configured, err := svc.Status(context.Background())
	require.NoError(t, err)
	require.True(t, configured.Configured)
	require.NotEqual(t, creds.key, configured.MaskedKey)
	require.Contains(t, configured.MaskedKey, "*")
}

func TestCredentialClear(t *testing.T) {
	creds := &stubCredentials{key: "gsk_live_abcdefghijklmnopqrstuvwx"}
	svc := newTestCredentialService(&verifyGateway{}, creds)

	require.NoError(t, svc.Clear(context.Background()))
	require.Empty(t, creds.key)
}

func TestMaskKeyShortInput(t *testing.T) {
	require.Equal(t, "********", maskKey("gsk_1234"))
	require.NotContains(t, maskKey("gsk_1234"), "gsk")
}
