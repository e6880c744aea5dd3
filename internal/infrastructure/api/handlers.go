package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"stylist-demo/internal/application/services"
	"stylist-demo/internal/application/usecases"
	domainservices "stylist-demo/internal/domain/services"
)

const maxFileSize = 10 * 1024 * 1024 // 10MB

// maxJSONBody bounds JSON and form bodies of the text endpoints.
const maxJSONBody = 1 << 20

type StylistHandler struct {
	stylistUseCase   *usecases.StylistUseCase
	parameterService *services.ParameterService
}

func NewStylistHandler(
	stylistUseCase *usecases.StylistUseCase,
	parameterService *services.ParameterService,
) *StylistHandler {
	return &StylistHandler{
		stylistUseCase:   stylistUseCase,
		parameterService: parameterService,
	}
}

// RegisterRoutes mounts the stylist API on r. metrics may be nil.
func (h *StylistHandler) RegisterRoutes(r *mux.Router, metrics http.Handler) {
	r.HandleFunc("/api/outfits", h.HandleGenerateOutfit).Methods(http.MethodPost)
	r.HandleFunc("/api/trends", h.HandleFetchTrends).Methods(http.MethodGet)
	r.HandleFunc("/api/items/analyze-text", h.HandleAnalyzeItemByText).Methods(http.MethodPost)
	r.HandleFunc("/api/items/analyze-image", h.HandleAnalyzeItemByImage).Methods(http.MethodPost)

	r.HandleFunc("/healthz", h.HandleHealth).Methods(http.MethodGet)
	if metrics != nil {
		r.Handle("/metrics", metrics).Methods(http.MethodGet)
	}
}

func (h *StylistHandler) HandleGenerateOutfit(w http.ResponseWriter, r *http.Request) {
	var input usecases.OutfitInput
	if isJSON(r) {
		if err := decodeJSON(w, r, &input); err != nil {
			h.sendError(w, "リクエストの形式が正しくありません", http.StatusBadRequest)
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		input = h.parameterService.ParseOutfitInput(r)
	}

	output, err := h.stylistUseCase.GenerateOutfit(r.Context(), input)
	if err != nil {
		log.Printf("Generate outfit failed: %v", err)
		h.sendOperationError(w, err)
		return
	}

	h.sendJSON(w, output)
}

func (h *StylistHandler) HandleFetchTrends(w http.ResponseWriter, r *http.Request) {
	input := h.parameterService.ParseTrendsInput(r)
	if input.Category == "" {
		h.sendError(w, "categoryパラメータが必要です", http.StatusBadRequest)
		return
	}

	output, err := h.stylistUseCase.FetchTrends(r.Context(), input)
	if err != nil {
		log.Printf("Fetch trends failed: %v", err)
		h.sendOperationError(w, err)
		return
	}

	h.sendJSON(w, output)
}

func (h *StylistHandler) HandleAnalyzeItemByText(w http.ResponseWriter, r *http.Request) {
	var input usecases.ItemTextInput
	if isJSON(r) {
		if err := decodeJSON(w, r, &input); err != nil {
			h.sendError(w, "リクエストの形式が正しくありません", http.StatusBadRequest)
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		input = h.parameterService.ParseItemTextInput(r)
	}

	if input.Text == "" {
		h.sendError(w, "textパラメータが必要です", http.StatusBadRequest)
		return
	}

	output, err := h.stylistUseCase.AnalyzeItemByText(r.Context(), input)
	if err != nil {
		log.Printf("Analyze item by text failed: %v", err)
		h.sendOperationError(w, err)
		return
	}

	h.sendJSON(w, output)
}

func (h *StylistHandler) HandleAnalyzeItemByImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize)
	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(w, "画像が大きすぎます（10MBまで対応）", http.StatusRequestEntityTooLarge)
			return
		}
		h.sendError(w, "multipart/form-dataで画像を送信してください", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		h.sendError(w, "画像を選んでください", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(w, "画像の読み込みに失敗しました", http.StatusInternalServerError)
		return
	}

	input := usecases.ItemImageInput{
		ImageData: data,
		MimeType:  fileHeader.Header.Get("Content-Type"),
	}

	output, err := h.stylistUseCase.AnalyzeItemByImage(r.Context(), input)
	if err != nil {
		log.Printf("Analyze item by image failed: %v", err)
		if errors.Is(err, usecases.ErrInvalidImage) {
			h.sendError(w, "対応していない画像形式です", http.StatusBadRequest)
			return
		}
		h.sendOperationError(w, err)
		return
	}

	h.sendJSON(w, output)
}

func (h *StylistHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// sendOperationError maps an operation failure onto a status code. The
// message is the operation's own failure text.
func (h *StylistHandler) sendOperationError(w http.ResponseWriter, err error) {
	if errors.Is(err, domainservices.ErrPairedImageMissing) {
		h.sendError(w, domainservices.ErrPairedImageMissing.Error(), http.StatusBadGateway)
		return
	}

	for _, sentinel := range []error{
		domainservices.ErrGenerateOutfit,
		domainservices.ErrFetchTrends,
		domainservices.ErrAnalyzeItemByText,
		domainservices.ErrAnalyzeItemByImage,
	} {
		if errors.Is(err, sentinel) {
			h.sendError(w, sentinel.Error(), http.StatusInternalServerError)
			return
		}
	}

	h.sendError(w, "生成に失敗しました", http.StatusInternalServerError)
}

func (h *StylistHandler) sendJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

func (h *StylistHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	return json.NewDecoder(r.Body).Decode(v)
}
