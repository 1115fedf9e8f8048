// Package linkcode issues one-off codes that bind a messaging-platform user to
// a member. A code embeds the member id and a uuidv7 nonce, base64-encoded.
package linkcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samborkent/uuidv7"
)

func GenerateCode(memberID string) string {
	nonce := uuidv7.New()

	code := fmt.Sprintf("%s|%s", memberID, nonce.String())
	return base64.StdEncoding.EncodeToString([]byte(code))
}

func Decode(code string) (memberID, nonce string, err error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return "", "", err
	}
	res := strings.Split(string(decodedBytes), "|")
	if len(res) != 2 {
		return "", "", fmt.Errorf("not correct format")
	}
	return res[0], res[1], nil
}
