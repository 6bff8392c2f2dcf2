package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/s2112257hs/split-it/internal/calculator"
	"github.com/s2112257hs/split-it/internal/models"
)

// calculateRequest is a validated calculate payload. Assignment values stay
// raw so per-item shape errors can name the offending item.
type calculateRequest struct {
	participants []models.Participant
	items        []models.Item
	assignments  map[string]json.RawMessage
	policy       string
}

// parseCalculateRequest decodes and validates the request body. Every
// returned error message is client-facing and reported as a 400.
func parseCalculateRequest(body io.Reader) (*calculateRequest, error) {
	var raw struct {
		Participants json.RawMessage `json:"participants"`
		Items        json.RawMessage `json:"items"`
		Assignments  json.RawMessage `json:"assignments"`
		Policy       json.RawMessage `json:"policy"`
	}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, errors.New("Request body must be JSON.")
	}

	for _, field := range []struct {
		name string
		raw  json.RawMessage
	}{
		{"participants", raw.Participants},
		{"items", raw.Items},
		{"assignments", raw.Assignments},
	} {
		if field.raw == nil {
			return nil, fmt.Errorf("Missing field: %s", field.name)
		}
	}

	var rawParticipants []json.RawMessage
	if err := json.Unmarshal(raw.Participants, &rawParticipants); err != nil || len(rawParticipants) == 0 {
		return nil, errors.New("'participants' must be a non-empty list.")
	}
	participants := make([]models.Participant, 0, len(rawParticipants))
	for _, rp := range rawParticipants {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rp, &fields); err != nil {
			return nil, errors.New("Each participant must be an object with an 'id'.")
		}
		idRaw, ok := fields["id"]
		if !ok {
			return nil, errors.New("Each participant must be an object with an 'id'.")
		}
		var p models.Participant
		if err := json.Unmarshal(idRaw, &p.ID); err != nil || strings.TrimSpace(p.ID) == "" {
			return nil, errors.New("Participant 'id' must be a non-empty string.")
		}
		if nameRaw, ok := fields["name"]; ok {
			var name string
			if err := json.Unmarshal(nameRaw, &name); err == nil {
				p.Name = name
			}
		}
		participants = append(participants, p)
	}

	if bytes.Equal(raw.Items, []byte("null")) {
		return nil, errors.New("'items' must be a list.")
	}
	var rawItems []json.RawMessage
	if err := json.Unmarshal(raw.Items, &rawItems); err != nil {
		return nil, errors.New("'items' must be a list.")
	}
	items := make([]models.Item, 0, len(rawItems))
	for _, ri := range rawItems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(ri, &fields); err != nil {
			return nil, errors.New("Each item must be an object.")
		}
		idRaw, hasID := fields["id"]
		priceRaw, hasPrice := fields["price_cents"]
		if !hasID || !hasPrice {
			return nil, errors.New("Each item must include 'id' and 'price_cents'.")
		}
		var it models.Item
		if err := json.Unmarshal(idRaw, &it.ID); err != nil || strings.TrimSpace(it.ID) == "" {
			return nil, errors.New("Item 'id' must be a non-empty string.")
		}
		if err := json.Unmarshal(priceRaw, &it.PriceCents); err != nil || it.PriceCents < 0 {
			return nil, errors.New("Item 'price_cents' must be an int >= 0.")
		}
		if descRaw, ok := fields["description"]; ok {
			var desc string
			if err := json.Unmarshal(descRaw, &desc); err == nil {
				it.Description = desc
			}
		}
		items = append(items, it)
	}

	if bytes.Equal(raw.Assignments, []byte("null")) {
		return nil, errors.New("'assignments' must be an object mapping item_id -> participant_ids.")
	}
	var assignments map[string]json.RawMessage
	if err := json.Unmarshal(raw.Assignments, &assignments); err != nil {
		return nil, errors.New("'assignments' must be an object mapping item_id -> participant_ids.")
	}

	policy := models.PolicyPositional
	if raw.Policy != nil && !bytes.Equal(raw.Policy, []byte("null")) {
		var p string
		if err := json.Unmarshal(raw.Policy, &p); err != nil {
			return nil, errors.New("'policy' must be 'positional' or 'fair'.")
		}
		switch p {
		case "", models.PolicyPositional:
			policy = models.PolicyPositional
		case models.PolicyFair:
			policy = models.PolicyFair
		default:
			return nil, errors.New("'policy' must be 'positional' or 'fair'.")
		}
	}

	return &calculateRequest{
		participants: participants,
		items:        items,
		assignments:  assignments,
		policy:       policy,
	}, nil
}

// handleCalculate splits every assigned item among its participants and
// returns penny-perfect totals. Items are processed in request list order,
// which is what makes fair-policy results reproducible.
func (s *Service) handleCalculate(w http.ResponseWriter, r *http.Request) {
	req, err := parseCalculateRequest(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	totals := make(map[string]int64, len(req.participants))
	for _, p := range req.participants {
		totals[p.ID] = 0
	}

	itemsByID := make(map[string]models.Item, len(req.items))
	for _, it := range req.items {
		itemsByID[it.ID] = it
	}

	assignments := make(map[string][]string, len(req.assignments))
	for itemID, rawPIDs := range req.assignments {
		if _, ok := itemsByID[itemID]; !ok {
			s.writeError(w, http.StatusBadRequest, codeBadRequest,
				fmt.Sprintf("Assignment references unknown item id: %s", itemID))
			return
		}
		var pids []string
		if err := json.Unmarshal(rawPIDs, &pids); err != nil || len(pids) == 0 {
			s.writeError(w, http.StatusBadRequest, codeBadRequest,
				fmt.Sprintf("Assignment for item %s must be a non-empty list of participant ids.", itemID))
			return
		}
		for _, pid := range pids {
			if _, ok := totals[pid]; !ok {
				s.writeError(w, http.StatusBadRequest, codeBadRequest,
					fmt.Sprintf("Assignment references unknown participant id: %s", pid))
				return
			}
		}
		assignments[itemID] = pids
	}

	var grandTotal int64
	order := make(map[string]int)
	processed := make(map[string]bool, len(assignments))

	for _, it := range req.items {
		pids, ok := assignments[it.ID]
		if !ok || processed[it.ID] {
			continue
		}
		processed[it.ID] = true

		itemTotal := itemsByID[it.ID].PriceCents
		grandTotal += itemTotal

		var alloc calculator.Allocation
		var err error
		if req.policy == models.PolicyFair {
			calculator.ExtendOrder(order, pids)
			alloc, err = calculator.SplitFairRemainder(itemTotal, pids, totals, order)
		} else {
			alloc, err = calculator.SplitPennyPerfect(itemTotal, pids)
		}
		if err != nil {
			if errors.Is(err, calculator.ErrInvalidInput) {
				s.writeError(w, http.StatusUnprocessableEntity, codeSplitFailed, err.Error())
				return
			}
			s.logger.Error("Split computation failed", "item_id", it.ID, "error", err)
			s.writeError(w, http.StatusInternalServerError, codeInternalMismatch,
				"Internal error: totals do not sum to grand total.")
			return
		}

		calculator.AddToTotals(totals, alloc)
	}

	var sum int64
	for _, cents := range totals {
		sum += cents
	}
	if sum != grandTotal {
		s.logger.Error("Calculated totals do not sum to grand total",
			"sum", sum, "grand_total", grandTotal, "policy", req.policy)
		s.writeError(w, http.StatusInternalServerError, codeInternalMismatch,
			"Internal error: totals do not sum to grand total.")
		return
	}

	s.metrics.SplitComputed(req.policy)
	s.writeJSON(w, http.StatusOK, models.CalculateResponse{
		TotalsByParticipantID: totals,
		GrandTotalCents:       grandTotal,
	})
}
