package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/validators"
	"github.com/MKhiriev/go-polip/models"
)

const manufacturerName = "polip ingest simulator"

// errorSemantics describes the error codes devices may report.
var errorSemantics = map[int64]string{
	0: "notification",
	1: "generic failure",
	2: "sensor failure",
	3: "actuator failure",
	4: "configuration invalid",
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// value reports the stored counter. It is reachable without a valid tag or
// counter.
func (h *Handler) value(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, document.New())
}

func (h *Handler) poll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := deviceRequestFrom(ctx)
	resp := document.New()

	if queryFlag(r, "state") {
		state, err := h.services.Ingest.State(ctx, req.serial)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.Set(validators.FieldState, state)
	}

	if queryFlag(r, "manufacturer") {
		resp.Set("manufacturer", h.manufacturer(r))
	}

	if queryFlag(r, "rpc") {
		queued, err := h.services.Ingest.QueuedRPCs(ctx, req.serial)
		if err != nil {
			writeError(w, r, err)
			return
		}
		list := make([]any, 0, len(queued))
		for _, rpc := range queued {
			entry := document.New()
			entry.Set("uuid", rpc.UUID)
			entry.Set("type", rpc.Type)
			entry.Set("status", rpc.Status.String())
			entry.Set("parameters", rpc.Parameters)
			list = append(list, entry)
		}
		resp.Set(validators.FieldRPC, list)
	}

	h.respond(w, r, resp)
}

func (h *Handler) meta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := deviceRequestFrom(ctx)
	resp := document.New()

	if queryFlag(r, "state") {
		state, err := h.services.Ingest.State(ctx, req.serial)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.Set(validators.FieldState, state)
	}

	if queryFlag(r, "sensors") {
		sense, err := h.services.Ingest.Sense(ctx, req.serial)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.Set(validators.FieldSense, sense)
	}

	if queryFlag(r, "manufacturer") {
		resp.Set("manufacturer", h.manufacturer(r))
	}

	if queryFlag(r, "general") {
		general := resp.SetObject("general")
		general.Set(validators.FieldSerial, req.serial)
		firmware, _ := req.doc.GetString(validators.FieldFirmware)
		hardware, _ := req.doc.GetString(validators.FieldHardware)
		general.Set(validators.FieldFirmware, firmware)
		general.Set(validators.FieldHardware, hardware)
	}

	h.respond(w, r, resp)
}

func (h *Handler) pushState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := deviceRequestFrom(ctx)

	state, err := h.requireObject(r, req.doc, validators.FieldState)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.Ingest.StoreState(ctx, req.serial, state); err != nil {
		writeError(w, r, err)
		return
	}

	h.respond(w, r, document.New())
}

func (h *Handler) pushSense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := deviceRequestFrom(ctx)

	sense, err := h.requireObject(r, req.doc, validators.FieldSense)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.services.Ingest.StoreSense(ctx, req.serial, sense); err != nil {
		writeError(w, r, err)
		return
	}

	h.respond(w, r, document.New())
}

func (h *Handler) pushError(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := deviceRequestFrom(ctx)

	if err := h.validator.Validate(ctx, req.doc, validators.ErrorFields...); err != nil {
		writeError(w, r, err)
		return
	}

	report := document.New()
	code, _ := req.doc.Get(validators.FieldCode)
	message, _ := req.doc.Get(validators.FieldMessage)
	report.Set(validators.FieldCode, code)
	report.Set(validators.FieldMessage, message)
	if err := h.services.Ingest.StoreError(ctx, req.serial, report); err != nil {
		writeError(w, r, err)
		return
	}

	h.respond(w, r, document.New())
}

func (h *Handler) pushRPC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := deviceRequestFrom(ctx)

	if err := h.validator.Validate(ctx, req.doc, validators.RPCFields...); err != nil {
		writeError(w, r, err)
		return
	}

	body, _ := req.doc.GetObject(validators.FieldRPC)
	uuid, _ := body.GetString("uuid")
	statusText, _ := body.GetString("status")
	status := models.ParseRPCStatus(statusText)

	if err := h.services.Ingest.UpdateRPC(ctx, req.serial, uuid, status); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().
		Str("func", "*Handler.pushRPC").
		Str("uuid", uuid).
		Str("status", statusText).
		Bool("has_result", !body.IsNull("result")).
		Msg("rpc status received")

	h.respond(w, r, document.New())
}

func (h *Handler) schema(w http.ResponseWriter, r *http.Request) {
	resp := document.New()
	schema := resp.SetObject("schema")

	state := schema.SetObject(validators.FieldState)
	state.Set("type", "object")
	sense := schema.SetObject(validators.FieldSense)
	sense.Set("type", "object")

	rpcTypes := make([]any, 0, 4)
	for _, t := range []string{"ping", "set_state", "report_sense", "reboot"} {
		rpcTypes = append(rpcTypes, t)
	}
	schema.Set("rpc_types", rpcTypes)

	h.respond(w, r, resp)
}

func (h *Handler) errorSemantic(w http.ResponseWriter, r *http.Request) {
	resp := document.New()

	if raw := r.URL.Query().Get("code"); raw != "" {
		code, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: code %q", ErrInvalidBody, raw))
			return
		}
		description, ok := errorSemantics[code]
		if !ok {
			writeError(w, r, fmt.Errorf("%w: %d", ErrUnknownErrorCode, code))
			return
		}
		resp.Set(validators.FieldCode, code)
		resp.Set("description", description)
		h.respond(w, r, resp)
		return
	}

	all := resp.SetObject("semantics")
	for code := range int64(len(errorSemantics)) {
		if description, ok := errorSemantics[code]; ok {
			all.Set(strconv.FormatInt(code, 10), description)
		}
	}
	h.respond(w, r, resp)
}

func (h *Handler) manufacturer(r *http.Request) *document.Document {
	doc := document.New()
	doc.Set("name", manufacturerName)
	doc.Set("version", h.services.AppInfo.GetAppVersion(r.Context()))
	return doc
}

func (h *Handler) requireObject(r *http.Request, doc *document.Document, field string) (*document.Document, error) {
	if err := h.validator.Validate(r.Context(), doc, field); err != nil {
		return nil, err
	}
	obj, ok := doc.GetObject(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", validators.ErrNotAnObject, field)
	}
	return obj, nil
}

// queryFlag reads a boolean query parameter. Missing or malformed values
// are false.
func queryFlag(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
