package v1

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ResponderKeyContextKey ключ gin-контекста с отпечатком принятого API-ключа
const ResponderKeyContextKey = "responder_key"

// keyring набор допустимых ключей ответчиков. Хранятся только SHA-256 дайджесты:
// сравнение идёт по значениям одинаковой длины.
type keyring struct {
	digests [][sha256.Size]byte
}

func newKeyring(keys []string) *keyring {
	kr := &keyring{}
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			kr.digests = append(kr.digests, sha256.Sum256([]byte(k)))
		}
	}
	return kr
}

// match возвращает отпечаток ключа, если он есть в наборе; перебор не прерывается
func (kr *keyring) match(presented string) (string, bool) {
	digest := sha256.Sum256([]byte(presented))
	found := 0
	for i := range kr.digests {
		found |= subtle.ConstantTimeCompare(kr.digests[i][:], digest[:])
	}
	if found != 1 {
		return "", false
	}
	return hex.EncodeToString(digest[:4]), true
}

// presentedKey ключ из X-API-Key, иначе из Authorization: Bearer
func presentedKey(c *gin.Context) string {
	if key := strings.TrimSpace(c.GetHeader("X-API-Key")); key != "" {
		return key
	}
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// ResponderAuthMiddleware пускает к маршрутам ответчиков только с известным API-ключом
func ResponderAuthMiddleware(keys []string, log *logrus.Logger) gin.HandlerFunc {
	kr := newKeyring(keys)
	return func(c *gin.Context) {
		entry := log.WithFields(logrus.Fields{"route": c.FullPath(), "client_ip": c.ClientIP()})

		key := presentedKey(c)
		if key == "" {
			entry.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		fingerprint, ok := kr.match(key)
		if !ok {
			entry.Warn("Rejected unknown API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set(ResponderKeyContextKey, fingerprint)
		c.Next()
	}
}
