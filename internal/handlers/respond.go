package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindErrorMessage turns gin binding failures into a readable message.
// Validator errors name the offending fields instead of dumping the struct
// paths at the client.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			switch fe.Tag() {
			case "required":
				fields[i] = fmt.Sprintf("campo '%s' é obrigatório", fe.Field())
			case "oneof":
				fields[i] = fmt.Sprintf("campo '%s' deve ser um de: %s", fe.Field(), fe.Param())
			case "email":
				fields[i] = fmt.Sprintf("campo '%s' deve ser um email válido", fe.Field())
			case "datetime":
				fields[i] = fmt.Sprintf("campo '%s' deve estar no formato %s", fe.Field(), fe.Param())
			default:
				fields[i] = fmt.Sprintf("campo '%s' é inválido", fe.Field())
			}
		}
		return "Dados inválidos: " + strings.Join(fields, "; ")
	}
	return "Formato da requisição inválido: " + err.Error()
}

// parseIDParam reads the :id path parameter as an integer id.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"message": "ID inválido."})
		return 0, false
	}
	return id, true
}
