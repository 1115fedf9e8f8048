package linkcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	encodedCode := GenerateCode("member-1")
	assert.NotEmpty(t, encodedCode, "Encoded code should not be empty")
}

func TestDecode(t *testing.T) {
	encodedCode := GenerateCode("member-1")

	memberID, nonce, err := Decode(encodedCode)

	assert.Nil(t, err, "Should not have an error during decoding")
	assert.Equal(t, "member-1", memberID, "Decoded member id should match the original")
	assert.NotEmpty(t, nonce, "Decoded nonce should not be empty")
}

func TestDecode_ErrorHandling(t *testing.T) {
	_, _, err := Decode("this is not a base64 string")
	assert.NotNil(t, err, "Expected an error for incorrect base64 string")
}
