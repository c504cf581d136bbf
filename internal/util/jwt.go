package util

import (
	"time"

	"skill_assistant_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims 令牌载荷：sub 为学生ID，email 为注册邮箱，二者缺一即视为无效
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (c *Claims) StudentID() string {
	return c.Subject
}

func GenerateJWT(student *model.Student, secret, algorithm string, expiration time.Duration) (string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", ErrInvalidToken
	}

	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		Email: student.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   student.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT 校验签名、算法与有效期；签名不符、结构异常、过期或
// 身份字段缺失一律返回同一个无效令牌错误
func ParseJWT(tokenString, secret, algorithm string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{algorithm}))

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetStudentFromContext 返回认证中间件写入的学生文档，未认证时为 nil
func GetStudentFromContext(c *gin.Context) *model.Student {
	value, exists := c.Get("student")
	if !exists {
		return nil
	}
	student, ok := value.(*model.Student)
	if !ok {
		return nil
	}
	return student
}
