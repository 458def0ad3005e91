package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/facturable/facturable/internal/subscription/domain"
)

func (s *Server) ListSubscriptions(c *gin.Context) {
	subs, err := s.subscriptionSvc.List(c.Request.Context(), queryBool(c, "active"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": subs})
}

func (s *Server) CreateSubscription(c *gin.Context) {
	rec, err := bindRecord[domain.Record](c, domain.Contract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	sub, err := s.subscriptionSvc.Create(c.Request.Context(), rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (s *Server) GetSubscription(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	sub, err := s.subscriptionSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (s *Server) UpdateSubscription(c *gin.Context) {
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

	sub, err := s.subscriptionSvc.Update(c.Request.Context(), id, rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (s *Server) DeleteSubscription(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.subscriptionSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
