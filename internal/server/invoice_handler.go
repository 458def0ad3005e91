package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/facturable/facturable/internal/invoice/domain"
)

func (s *Server) ListInvoices(c *gin.Context) {
	req := domain.ListRequest{
		EntityID:    queryInt64(c, "entity_id"),
		SerieID:     queryInt64(c, "serie_id"),
		LAFStatusID: queryInt64(c, "laf_status_id"),
	}

	invoices, err := s.invoiceSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	rec, err := bindRecord[domain.InvoiceRecord](c, domain.Contract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	inv, err := s.invoiceSvc.Create(c.Request.Context(), rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inv)
}

func (s *Server) GetInvoice(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	inv, err := s.invoiceSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rec, err := bindRecord[domain.InvoiceRecord](c, domain.Contract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	inv, err := s.invoiceSvc.Update(c.Request.Context(), id, rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}

func (s *Server) RectifyInvoice(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var body struct {
		Complete bool    `json:"complete"`
		ItemIDs  []int64 `json:"item_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		AbortWithError(c, errInvalidRequestBody)
		return
	}

	inv, err := s.invoiceSvc.Rectify(c.Request.Context(), domain.RectifyRequest{
		InvoiceID: id,
		Complete:  body.Complete,
		ItemIDs:   body.ItemIDs,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}

func (s *Server) ListSeries(c *gin.Context) {
	series, err := s.invoiceSvc.ListSeries(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (s *Server) CreateSerie(c *gin.Context) {
	rec, err := bindRecord[domain.SerieRecord](c, domain.SerieContract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	serie, err := s.invoiceSvc.CreateSerie(c.Request.Context(), rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serie)
}

func (s *Server) UpdateSerie(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rec, err := bindRecord[domain.SerieRecord](c, domain.SerieContract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	serie, err := s.invoiceSvc.UpdateSerie(c.Request.Context(), id, rec)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, serie)
}

// CalculateInvoiceItem previews a single line item's derived amounts without
// persisting anything. from_total=true makes the entered total drive the
// unit price instead of the other way around.
func (s *Server) CalculateInvoiceItem(c *gin.Context) {
	fromTotal := false
	if b := queryBool(c, "from_total"); b != nil {
		fromTotal = *b
	}

	rec, err := bindRecord[domain.LineItemRecord](c, domain.LineItemContract(), s.translate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	item, err := s.invoiceSvc.RecalculateItem(c.Request.Context(), rec, fromTotal)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
