package order

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drivethru/internal/catalog"
	"drivethru/internal/speech"
)

// AudioArchiver stores raw voice clips for later review. Archiving is
// best effort: a failed upload never fails the order.
type AudioArchiver interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

type Handler struct {
	service     *Service
	transcriber speech.Transcriber
	archive     AudioArchiver
}

func NewHandler(service *Service, transcriber speech.Transcriber, archive AudioArchiver) *Handler {
	return &Handler{
		service:     service,
		transcriber: transcriber,
		archive:     archive,
	}
}

// CurrentOrder resolves the session order placed by the session
// middleware.
func CurrentOrder(c *gin.Context) *Order {
	return c.MustGet("order").(*Order)
}

func orderView(o *Order) gin.H {
	return gin.H{
		"lines":          o.Lines(),
		"total":          o.Total(),
		"stage":          o.Stage(),
		"payment_method": o.PaymentMethod(),
	}
}

// --------------------------------------------------
// Read current order
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, orderView(CurrentOrder(c)))
}

// --------------------------------------------------
// UI-driven edits
// --------------------------------------------------

type addItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	o := CurrentOrder(c)
	added, err := h.service.AddItem(c.Request.Context(), o, req.Name, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		case errors.Is(err, ErrOrderLocked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added, "order": orderView(o)})
}

type updateLineRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	var req updateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o := CurrentOrder(c)
	// Out-of-bounds indexes are tolerated and ignored: the kiosk UI
	// may fire edits against rows it has already removed.
	if err := o.UpdateQuantity(index, req.Quantity); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orderView(o))
}

func (h *Handler) DeleteLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	o := CurrentOrder(c)
	if err := o.RemoveItem(index); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orderView(o))
}

// --------------------------------------------------
// Voice and transcript ordering
// --------------------------------------------------

type transcriptRequest struct {
	Text string `json:"text"`
}

func (h *Handler) ApplyTranscript(c *gin.Context) {
	var req transcriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o := CurrentOrder(c)
	added, warnings, err := h.service.ApplyTranscript(c.Request.Context(), o, req.Text)
	if err != nil {
		if errors.Is(err, ErrOrderLocked) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript": req.Text,
		"added":      added,
		"warnings":   warnings,
		"order":      orderView(o),
	})
}

func (h *Handler) VoiceOrder(c *gin.Context) {
	file, _, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read audio"})
		return
	}

	ctx := c.Request.Context()

	if h.archive != nil {
		key := "voice-orders/" + uuid.New().String() + ".wav"
		if _, err := h.archive.Upload(ctx, key, bytes.NewReader(audio)); err != nil {
			log.Printf("AUDIO_ARCHIVE_FAILED key=%s err=%v", key, err)
		}
	}

	transcript, err := h.transcriber.Transcribe(ctx, audio)
	if err != nil {
		// Speech failure leaves the order untouched and is surfaced
		// as a descriptive failure, not a crash.
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	o := CurrentOrder(c)
	added, warnings, err := h.service.ApplyTranscript(ctx, o, transcript)
	if err != nil {
		if errors.Is(err, ErrOrderLocked) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript": transcript,
		"added":      added,
		"warnings":   warnings,
		"order":      orderView(o),
	})
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

func (h *Handler) Checkout(c *gin.Context) {
	o := CurrentOrder(c)
	if err := o.ProceedToPayment(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orderView(o))
}

func (h *Handler) BackToOrdering(c *gin.Context) {
	o := CurrentOrder(c)
	if err := o.BackToOrdering(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orderView(o))
}

type paymentRequest struct {
	Method   PaymentMethod `json:"method"`
	Tendered int           `json:"tendered"`
}

func (h *Handler) SetPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o := CurrentOrder(c)
	if o.Stage() != StagePayment {
		c.JSON(http.StatusConflict, gin.H{"error": ErrWrongStage.Error()})
		return
	}
	if err := o.SetPaymentMethod(req.Method); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Method == PaymentCash {
		o.SetTendered(req.Tendered)
	}

	total := o.Total()
	resp := gin.H{
		"method":   o.PaymentMethod(),
		"tendered": o.Tendered(),
		"total":    total,
		"settled":  o.Tendered() >= total,
	}
	if o.Tendered() >= total {
		resp["change"] = o.Tendered() - total
	} else {
		// Insufficient cash is a normal business state, not an error.
		resp["shortfall"] = total - o.Tendered()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Complete(c *gin.Context) {
	o := CurrentOrder(c)
	if err := o.Complete(); err != nil {
		if errors.Is(err, ErrPaymentShortfall) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stage":   o.Stage(),
		"receipt": h.receiptFor(o),
	})
}

func (h *Handler) GetReceipt(c *gin.Context) {
	o := CurrentOrder(c)
	if o.Stage() != StageCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "receipt available after completion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": h.receiptFor(o)})
}

func (h *Handler) receiptFor(o *Order) string {
	if tendered := o.Tendered(); tendered > 0 {
		return o.Receipt(&tendered)
	}
	return o.Receipt(nil)
}

func (h *Handler) Reset(c *gin.Context) {
	o := CurrentOrder(c)
	o.Restart()
	c.JSON(http.StatusOK, orderView(o))
}
