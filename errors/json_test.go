package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	err := New(CodeOpaqueOrigin, "the origin is an opaque origin")
	resp := ToJSON(err)

	require.NotNil(t, resp)
	require.Equal(t, "OPAQUE_ORIGIN", resp.Code)
	require.Equal(t, "the origin is an opaque origin", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Nil(t, resp.Context)
}

func TestToJSON_WithContext(t *testing.T) {
	err := WrapWithContext(stderrors.New("SecurityError"), CodeInvalidRPID, "bad rp id", map[string]interface{}{
		"rp_id":    "example.com",
		"hostname": "sub.example.org",
	})

	resp := ToJSON(err)

	require.Equal(t, "INVALID_RP_ID", resp.Code)
	require.Equal(t, "example.com", resp.Context["rp_id"])
	require.Equal(t, "sub.example.org", resp.Context["hostname"])
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("ConstraintError"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "ConstraintError", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
}

func TestToJSON_NilError(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(stderrors.New("secret platform detail"), CodeUserCancelledOperation, "user cancelled the operation; try again")

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	require.JSONEq(t,
		`{"code":"USER_CANCELLED_OPERATION","message":"user cancelled the operation; try again","classification":"RETRYABLE"}`,
		string(data))
	require.NotContains(t, string(data), "secret platform detail")
}

func TestMarshalJSON_UnsupportedContext(t *testing.T) {
	err := WrapWithContext(stderrors.New("x"), CodeInvalidDomain, "bad", map[string]interface{}{
		"fn": func() {},
	})

	_, marshalErr := json.Marshal(err)
	require.Error(t, marshalErr)
}
