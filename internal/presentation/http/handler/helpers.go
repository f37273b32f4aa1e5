package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/dto/response"
	"github.com/sertaogourmet/pos-api/internal/presentation/http/middleware"
	"github.com/sertaogourmet/pos-api/pkg/utils"
)

// GetOperatorID extracts the operator ID from the Gin context
func GetOperatorID(c *gin.Context) *uuid.UUID {
	id := middleware.GetOperatorID(c)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// paramUUID parses a path parameter, writing a 400 on failure.
func paramUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// paramTableID parses the :id of a table route.
func paramTableID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.BadRequest(c, "Invalid table id")
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
