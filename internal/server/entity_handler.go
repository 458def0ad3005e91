package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/facturable/facturable/internal/entity/domain"
)

func (s *Server) ListEntities(c *gin.Context) {
	var req domain.ListRequest
	if err := c.ShouldBindQuery(&req.Pagination); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}
	req.Name = c.Query("name")
	req.CRN = c.Query("crn")
	req.Active = queryBool(c, "active")

	resp, err := s.entitySvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) CreateEntity(c *gin.Context) {
	rec, err := bindRecord[domain.Record](c, domain.Contract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ent, err := s.entitySvc.Create(c.Request.Context(), rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ent)
}

func (s *Server) GetEntity(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ent, err := s.entitySvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ent)
}

func (s *Server) UpdateEntity(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rec, err := bindRecord[domain.Record](c, domain.Contract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ent, err := s.entitySvc.Update(c.Request.Context(), id, rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ent)
}

func (s *Server) DeleteEntity(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.entitySvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
