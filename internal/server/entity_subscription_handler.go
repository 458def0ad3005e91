package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/facturable/facturable/internal/entitysubscription/domain"
)

func (s *Server) ListEntitySubscriptionsByEntity(c *gin.Context) {
	entityID, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	links, err := s.entitySubSvc.ListByEntity(c.Request.Context(), entityID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entity_subscriptions": links})
}

func (s *Server) GetEntitySubscription(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	link, err := s.entitySubSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

func (s *Server) CreateEntitySubscription(c *gin.Context) {
	rec, err := bindRecord[domain.Record](c, domain.Contract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	link, err := s.entitySubSvc.Create(c.Request.Context(), rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (s *Server) UpdateEntitySubscription(c *gin.Context) {
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

	link, err := s.entitySubSvc.Update(c.Request.Context(), id, rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

func (s *Server) DeleteEntitySubscription(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.entitySubSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
