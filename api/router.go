package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/nftledger/metrics"
	"github.com/MixinNetwork/nftledger/nft"
	"github.com/gorilla/mux"
)

// NewRouter serves the read views of the contract next to the metrics, so
// they stay available while the serving process holds the store.
func NewRouter(contract *nft.Contract) http.Handler {
	h := &handler{contract: contract}
	r := mux.NewRouter()
	r.HandleFunc("/contract", h.contractMetadata).Methods("GET")
	r.HandleFunc("/tokens/{id}", h.token).Methods("GET")
	r.HandleFunc("/owners/{owner}/tokens", h.tokensForOwner).Methods("GET")
	r.HandleFunc("/minters", h.minterAmount).Methods("GET")
	r.HandleFunc("/minters/{id}", h.isMinter).Methods("GET")
	r.HandleFunc("/events", h.events).Methods("GET")
	r.Handle("/metrics", metrics.Handler())
	return r
}

type handler struct {
	contract *nft.Contract
}

func (h *handler) contractMetadata(w http.ResponseWriter, r *http.Request) {
	meta, err := h.contract.ContractMetadata(r.Context())
	render(w, meta, err)
}

func (h *handler) token(w http.ResponseWriter, r *http.Request) {
	token, err := h.contract.Token(r.Context(), mux.Vars(r)["id"])
	render(w, token, err)
}

func (h *handler) tokensForOwner(w http.ResponseWriter, r *http.Request) {
	ids, err := h.contract.TokensForOwner(r.Context(), mux.Vars(r)["owner"])
	if ids == nil {
		ids = []string{}
	}
	render(w, ids, err)
}

func (h *handler) minterAmount(w http.ResponseWriter, r *http.Request) {
	amount, err := h.contract.MinterAmount(r.Context())
	if err != nil {
		render(w, nil, err)
		return
	}
	render(w, map[string]string{"amount": amount.String()}, nil)
}

func (h *handler) isMinter(w http.ResponseWriter, r *http.Request) {
	exist, err := h.contract.IsMinter(r.Context(), mux.Vars(r)["id"])
	render(w, map[string]bool{"minter": exist}, err)
}

func (h *handler) events(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	offset, _ := strconv.ParseUint(query.Get("offset"), 10, 64)
	limit, _ := strconv.Atoi(query.Get("limit"))
	logs, err := h.contract.Events(r.Context(), offset, limit)
	if logs == nil {
		logs = []string{}
	}
	render(w, logs, err)
}

func render(w http.ResponseWriter, data interface{}, err error) {
	w.Header().Set("Content-Type", "application/json")
	status := http.StatusOK
	body := map[string]interface{}{"data": data}
	if err != nil {
		status = http.StatusInternalServerError
		if errors.Is(err, nft.ErrTokenNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, nft.ErrNotInitialized) {
			status = http.StatusServiceUnavailable
		}
		body = map[string]interface{}{"error": map[string]string{
			"kind":    nft.ErrorKind(err),
			"message": err.Error(),
		}}
	}
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(body)
	if err != nil {
		logger.Verbosef("api.render() => %v\n", err)
	}
}
