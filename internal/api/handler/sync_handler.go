package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/infrastructure/queue"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// SyncHandler accepts batches of imported bank movements and hands them to
// the background dispatcher. Ingestion is asynchronous: the endpoint
// acknowledges with 202 before the records are materialised.
type SyncHandler struct {
	dispatcher *queue.Dispatcher
}

func NewSyncHandler(dispatcher *queue.Dispatcher) *SyncHandler {
	return &SyncHandler{dispatcher: dispatcher}
}

type bankTransactionRequest struct {
	ExternalID    string      `json:"externalId"    validate:"required"`
	BankAccountID string      `json:"bankAccountId" validate:"required"`
	Amount        money.Cents `json:"amount"`
	Date          int64       `json:"date"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
}

type syncBatchRequest struct {
	Transactions []bankTransactionRequest `json:"transactions" validate:"required,min=1,dive"`
}

type syncBatchResponse struct {
	Accepted int `json:"accepted"`
}

// Ingest enqueues a batch of bank movements for processing.
//
// @Summary      Ingest bank transactions
// @Tags         bank-transactions
// @Accept       json
// @Produce      json
// @Param        body  body      syncBatchRequest  true  "Transactions to ingest"
// @Success      202   {object}  syncBatchResponse
// @Failure      400   {object}  map[string]string
// @Router       /bank-transactions [post]
func (h *SyncHandler) Ingest(c echo.Context) error {
	var req syncBatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	txs := make([]domain.BankTransaction, 0, len(req.Transactions))
	for _, t := range req.Transactions {
		tx := domain.BankTransaction{
			ExternalID:    t.ExternalID,
			BankAccountID: t.BankAccountID,
			Amount:        t.Amount,
			Description:   t.Description,
			Category:      t.Category,
		}
		if t.Date > 0 {
			tx.Date = time.Unix(t.Date, 0).UTC()
		}
		txs = append(txs, tx)
	}

	h.dispatcher.EnqueueBatch(txs)
	return c.JSON(http.StatusAccepted, syncBatchResponse{Accepted: len(txs)})
}
