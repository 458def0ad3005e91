package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/facturable/facturable/internal/user/domain"
)

func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.userSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) CreateUser(c *gin.Context) {
	contract, err := domain.Contract(domain.ModeCreate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rec, err := bindRecord[domain.Record](c, contract, s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	u, err := s.userSvc.Create(c.Request.Context(), rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (s *Server) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	u, err := s.userSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (s *Server) UpdateUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	contract, err := domain.Contract(domain.ModeEdit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rec, err := bindRecord[domain.Record](c, contract, s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	u, err := s.userSvc.Update(c.Request.Context(), id, rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (s *Server) DeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.userSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) ListRoles(c *gin.Context) {
	roles, err := s.userSvc.ListRoles(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (s *Server) CreateRole(c *gin.Context) {
	rec, err := bindRecord[domain.RoleRecord](c, domain.RoleContract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	role, err := s.userSvc.CreateRole(c.Request.Context(), rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, role)
}

func (s *Server) UpdateRole(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rec, err := bindRecord[domain.RoleRecord](c, domain.RoleContract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	role, err := s.userSvc.UpdateRole(c.Request.Context(), id, rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, role)
}

func (s *Server) DeleteRole(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.userSvc.DeleteRole(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
