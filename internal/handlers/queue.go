package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"fila/internal/events"
	"fila/internal/models"
	"fila/internal/queue"
	"fila/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 2 * time.Second

type queueStore interface {
	List() []models.EntryView
	Get(position int) (models.EntryView, error)
	Enqueue(name string, class models.ServiceClass) models.Change
	Advance() (models.Change, bool)
	Remove(position int) (models.Change, error)
	Stats() models.Stats
}

// QueueHandler exposes the waiting line over HTTP.
type QueueHandler struct {
	store     queueStore
	publisher events.Publisher
	logger    *logrus.Logger
}

func NewQueueHandler(store queueStore, publisher events.Publisher, logger *logrus.Logger) *QueueHandler {
	return &QueueHandler{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// EnqueueRequest is the body of POST /fila.
type EnqueueRequest struct {
	Name  string `json:"nome" binding:"required,max=20" example:"Maria"`
	Class string `json:"tipo_atendimento" binding:"required,oneof=N P" example:"P"`
}

// List godoc
//
//	@Summary		Listar fila
//	@Description	Retorna todos os clientes ainda não atendidos, em ordem de posição
//	@Tags			fila
//	@Produce		json
//	@Success		200	{array}	models.EntryView
//	@Router			/fila [get]
func (h *QueueHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

// Get godoc
//
//	@Summary		Cliente na posição
//	@Description	Retorna o cliente que ocupa a posição informada
//	@Tags			fila
//	@Produce		json
//	@Param			id	path		int	true	"Posição na fila"
//	@Success		200	{object}	models.EntryView
//	@Failure		404	{object}	response.ErrorResponse	"Nenhum cliente na posição (NOT_FOUND)"
//	@Failure		422	{object}	response.ErrorResponse	"Posição inválida (INVALID_POSITION)"
//	@Router			/fila/{id} [get]
func (h *QueueHandler) Get(c *gin.Context) {
	position, ok := positionParam(c)
	if !ok {
		return
	}

	view, err := h.store.Get(position)
	if err != nil {
		h.renderStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Enqueue godoc
//
//	@Summary		Adicionar cliente
//	@Description	Adiciona um cliente à fila. Clientes prioritários (P) entram logo após o último prioritário
//	@Tags			fila
//	@Accept			json
//	@Produce		json
//	@Param			cliente	body		EnqueueRequest	true	"Dados do cliente"
//	@Success		201		{object}	response.EnqueueResponse
//	@Failure		422		{object}	response.ErrorResponse	"Dados inválidos (VALIDATION_ERROR)"
//	@Router			/fila [post]
func (h *QueueHandler) Enqueue(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    response.CodeValidation,
			Message: "Dados do cliente inválidos",
			Details: err.Error(),
		})
		return
	}

	class, err := models.ParseServiceClass(req.Class)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    response.CodeValidation,
			Message: "Dados do cliente inválidos",
			Details: err.Error(),
		})
		return
	}

	change := h.store.Enqueue(req.Name, class)
	h.publish(c, events.ForEntry(events.CustomerJoined, change.Revision, change.Entry, change.Position))

	c.JSON(http.StatusCreated, response.EnqueueResponse{
		Message:  "Cliente adicionado com sucesso",
		Position: change.Position,
	})
}

// Advance godoc
//
//	@Summary		Atualizar fila
//	@Description	Atende o cliente da posição 1 e avança os demais uma posição
//	@Tags			fila
//	@Produce		json
//	@Success		200	{object}	response.SuccessResponse
//	@Router			/fila [put]
func (h *QueueHandler) Advance(c *gin.Context) {
	change, served := h.store.Advance()
	if served {
		h.publish(c, events.ForEntry(events.CustomerServed, change.Revision, change.Entry, change.Position))
	} else {
		h.publish(c, events.Event{Type: events.AdvancedEmpty, Revision: change.Revision, At: time.Now()})
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Fila atualizada com sucesso"})
}

// Remove godoc
//
//	@Summary		Remover cliente
//	@Description	Remove o cliente da posição informada e reposiciona os que estavam atrás dele
//	@Tags			fila
//	@Produce		json
//	@Param			id	path		int	true	"Posição na fila"
//	@Success		200	{object}	response.SuccessResponse
//	@Failure		404	{object}	response.ErrorResponse	"Nenhum cliente na posição (NOT_FOUND)"
//	@Failure		422	{object}	response.ErrorResponse	"Posição inválida (INVALID_POSITION)"
//	@Router			/fila/{id} [delete]
func (h *QueueHandler) Remove(c *gin.Context) {
	position, ok := positionParam(c)
	if !ok {
		return
	}

	change, err := h.store.Remove(position)
	if err != nil {
		h.renderStoreError(c, err)
		return
	}
	h.publish(c, events.ForEntry(events.CustomerRemoved, change.Revision, change.Entry, change.Position))

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Cliente removido com sucesso"})
}

// Status godoc
//
//	@Summary		Resumo da fila
//	@Description	Quantidade de clientes aguardando, por tipo, e de clientes já atendidos
//	@Tags			fila
//	@Produce		json
//	@Success		200	{object}	models.Stats
//	@Router			/status/fila [get]
func (h *QueueHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

func positionParam(c *gin.Context) (int, bool) {
	position, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{
			Code:    response.CodeInvalidPosition,
			Message: "A posição deve ser um número inteiro",
			Details: err.Error(),
		})
		return 0, false
	}
	return position, true
}

func (h *QueueHandler) renderStoreError(c *gin.Context, err error) {
	if errors.Is(err, queue.ErrNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    response.CodeNotFound,
			Message: "Cliente não encontrado na posição especificada",
		})
		return
	}
	h.logger.WithContext(c).WithError(err).Error("unexpected queue error")
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Erro interno",
	})
}

// publish runs after the store lock is released and outlives a client that
// has already gone away.
func (h *QueueHandler) publish(c *gin.Context, ev events.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), publishTimeout)
	defer cancel()

	if err := h.publisher.Publish(ctx, ev); err != nil {
		h.logger.WithContext(ctx).WithError(err).Warn("failed to publish queue event")
	}
}
