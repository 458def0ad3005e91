package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListTaxTypes(c *gin.Context) {
	rows, err := s.catalogRepo.ListTaxTypes(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tax_types": rows})
}

func (s *Server) ListServiceTypes(c *gin.Context) {
	rows, err := s.catalogRepo.ListServiceTypes(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_types": rows})
}

func (s *Server) ListPaymentMethods(c *gin.Context) {
	rows, err := s.catalogRepo.ListPaymentMethods(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_methods": rows})
}

func (s *Server) ListLAFStatuses(c *gin.Context) {
	rows, err := s.catalogRepo.ListLAFStatuses(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"laf_statuses": rows})
}

func (s *Server) ListBillingCycles(c *gin.Context) {
	rows, err := s.catalogRepo.ListBillingCycles(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"billing_cycles": rows})
}
