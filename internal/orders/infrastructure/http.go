package infrastructure

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/application"
	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/domain"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/errors"
)

// HTTPHandler handles HTTP requests for orders
type HTTPHandler struct {
	useCase *application.OrderUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.OrderUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the order routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	pedidos := r.Group("/pedidos")
	{
		pedidos.POST("", h.CriarPedido)
		pedidos.POST("/lote", h.CriarLotePedidos)
		pedidos.GET("/por-status", h.ListarPedidosPorStatus)
		pedidos.GET("/:id", h.ObterPedidoPorId)
	}
}

// PedidoItemDTO is a line item on the wire
type PedidoItemDTO struct {
	ProdutoID  int     `json:"produtoId" example:"10"`
	Quantidade int     `json:"quantidade" example:"2"`
	Valor      float64 `json:"valor" example:"100"`
}

// NovoPedidoDTO is the request body for creating an order
type NovoPedidoDTO struct {
	PedidoID  int             `json:"pedidoId" example:"1001"`
	ClienteID int             `json:"clienteId" example:"42"`
	Itens     []PedidoItemDTO `json:"itens"`
}

// LotePedidosDTO is the request body for batch creation
type LotePedidosDTO struct {
	Pedidos []NovoPedidoDTO `json:"pedidos"`
}

// PedidoCriadoDTO is the creation response
type PedidoCriadoDTO struct {
	ID     uint   `json:"id" example:"1"`
	Status string `json:"status" example:"Criado"`
}

// PedidoResponseDTO is the full order projection
type PedidoResponseDTO struct {
	ID          uint            `json:"id" example:"1"`
	PedidoID    int             `json:"pedidoId" example:"1001"`
	ClienteID   int             `json:"clienteId" example:"42"`
	Imposto     float64         `json:"imposto" example:"60"`
	DataCriacao time.Time       `json:"dataCriacao"`
	Status      string          `json:"status" example:"Criado"`
	Itens       []PedidoItemDTO `json:"itens"`
}

// ErroProcessamentoDTO is one failed item of a batch
type ErroProcessamentoDTO struct {
	PedidoID int    `json:"pedidoId" example:"1001"`
	Mensagem string `json:"mensagem"`
}

// ResultadoLoteDTO is the batch processing result
type ResultadoLoteDTO struct {
	Sucessos        []PedidoCriadoDTO      `json:"sucessos"`
	Erros           []ErroProcessamentoDTO `json:"erros"`
	TotalProcessado int                    `json:"totalProcessado" example:"3"`
	TotalSucesso    int                    `json:"totalSucesso" example:"2"`
	TotalErros      int                    `json:"totalErros" example:"1"`
}

// CriarPedido handles order creation
//
//	@Summary		Cria um novo pedido
//	@Description	Cria um pedido, calcula o imposto e notifica o Sistema B
//	@Tags			pedidos
//	@Accept			json
//	@Produce		json
//	@Param			pedido	body		NovoPedidoDTO	true	"Dados do novo pedido"
//	@Success		201		{object}	PedidoCriadoDTO
//	@Failure		400		{object}	errors.ErrorResponse
//	@Failure		409		{object}	errors.ErrorResponse
//	@Failure		500		{object}	errors.ErrorResponse
//	@Router			/api/pedidos [post]
func (h *HTTPHandler) CriarPedido(c *gin.Context) {
	var req NovoPedidoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("os dados do pedido são obrigatórios", err.Error()))
		return
	}

	order, err := h.useCase.CreateOrder(c.Request.Context(), toCreateInput(&req))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, PedidoCriadoDTO{
		ID:     order.ID,
		Status: string(order.Status),
	})
}

// ObterPedidoPorId handles order lookup
//
//	@Summary		Obtém um pedido pelo ID interno
//	@Tags			pedidos
//	@Produce		json
//	@Param			id	path		int	true	"ID interno do pedido"
//	@Success		200	{object}	PedidoResponseDTO
//	@Failure		404	{object}	errors.ErrorResponse
//	@Failure		500	{object}	errors.ErrorResponse
//	@Router			/api/pedidos/{id} [get]
func (h *HTTPHandler) ObterPedidoPorId(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Error(errors.NewValidation("ID do pedido inválido", nil))
		return
	}

	order, err := h.useCase.GetOrder(c.Request.Context(), uint(id))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toResponse(order))
}

// ListarPedidosPorStatus handles status-filtered listing
//
//	@Summary		Lista pedidos por status
//	@Tags			pedidos
//	@Produce		json
//	@Param			status	query		string	true	"Status (nome ou valor numérico 1-5)"
//	@Success		200		{array}		PedidoResponseDTO
//	@Failure		400		{object}	errors.ErrorResponse
//	@Failure		500		{object}	errors.ErrorResponse
//	@Router			/api/pedidos/por-status [get]
func (h *HTTPHandler) ListarPedidosPorStatus(c *gin.Context) {
	status, err := domain.ParseStatus(c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}

	orders, err := h.useCase.ListOrdersByStatus(c.Request.Context(), status)
	if err != nil {
		c.Error(err)
		return
	}

	responses := make([]PedidoResponseDTO, len(orders))
	for i, order := range orders {
		responses[i] = toResponse(order)
	}

	c.JSON(http.StatusOK, responses)
}

// CriarLotePedidos handles batch creation
//
//	@Summary		Processa um lote de pedidos
//	@Description	Cria cada pedido do lote; falhas individuais não interrompem o processamento
//	@Tags			pedidos
//	@Accept			json
//	@Produce		json
//	@Param			lote	body		LotePedidosDTO	true	"Lote de pedidos"
//	@Success		200		{object}	ResultadoLoteDTO
//	@Failure		400		{object}	errors.ErrorResponse
//	@Failure		500		{object}	errors.ErrorResponse
//	@Router			/api/pedidos/lote [post]
func (h *HTTPHandler) CriarLotePedidos(c *gin.Context) {
	var req LotePedidosDTO
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Pedidos) == 0 {
		c.Error(errors.NewValidation("a lista de pedidos é obrigatória e não pode estar vazia", nil))
		return
	}

	inputs := make([]application.CreateOrderInput, len(req.Pedidos))
	for i := range req.Pedidos {
		inputs[i] = *toCreateInput(&req.Pedidos[i])
	}

	result, err := h.useCase.ProcessBatch(c.Request.Context(), inputs)
	if err != nil {
		c.Error(err)
		return
	}

	response := ResultadoLoteDTO{
		Sucessos:        make([]PedidoCriadoDTO, len(result.Sucessos)),
		Erros:           make([]ErroProcessamentoDTO, len(result.Erros)),
		TotalProcessado: result.TotalProcessado,
		TotalSucesso:    result.TotalSucesso,
		TotalErros:      result.TotalErros,
	}
	for i, s := range result.Sucessos {
		response.Sucessos[i] = PedidoCriadoDTO{ID: s.ID, Status: string(s.Status)}
	}
	for i, e := range result.Erros {
		response.Erros[i] = ErroProcessamentoDTO{PedidoID: e.PedidoID, Mensagem: e.Mensagem}
	}

	c.JSON(http.StatusOK, response)
}

func toCreateInput(req *NovoPedidoDTO) *application.CreateOrderInput {
	itens := make([]application.CreateItemInput, len(req.Itens))
	for i, item := range req.Itens {
		itens[i] = application.CreateItemInput{
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Valor:      item.Valor,
		}
	}
	return &application.CreateOrderInput{
		PedidoID:  req.PedidoID,
		ClienteID: req.ClienteID,
		Itens:     itens,
	}
}

func toResponse(order *domain.Order) PedidoResponseDTO {
	itens := make([]PedidoItemDTO, len(order.Items))
	for i, item := range order.Items {
		itens[i] = PedidoItemDTO{
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Valor:      item.Valor,
		}
	}
	return PedidoResponseDTO{
		ID:          order.ID,
		PedidoID:    order.PedidoID,
		ClienteID:   order.ClienteID,
		Imposto:     order.Imposto,
		DataCriacao: order.CreatedAt,
		Status:      string(order.Status),
		Itens:       itens,
	}
}
