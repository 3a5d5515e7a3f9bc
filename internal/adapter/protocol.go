package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/utils"
	"github.com/MKhiriev/go-polip/internal/validators"
	"github.com/MKhiriev/go-polip/models"
)

// tagPlaceholder occupies the tag field while the HMAC is computed, on both
// the request and the response side.
const tagPlaceholder = "0"

type deviceAdapter struct {
	transport Transport
	device    *models.Device
	hasher    *utils.Hasher
	validator validators.Validator

	logger *logger.Logger
}

// NewDeviceAdapter binds dev to transport. The adapter keeps a pointer to
// dev and increments dev.Value after each successful value-bearing call;
// the key is copied once at construction.
func NewDeviceAdapter(dev *models.Device, transport Transport, logger *logger.Logger) DeviceAdapter {
	return &deviceAdapter{
		transport: transport,
		device:    dev,
		hasher:    utils.NewHasher(dev.Key),
		validator: validators.NewDocumentValidator(),
		logger:    logger,
	}
}

func (a *deviceAdapter) Device() *models.Device {
	return a.device
}

// SendTagged packs the device header into doc, signs it, posts it to
// endpoint and replaces doc with the decoded response.
//
// The response status is checked before the body is interpreted: a non-200
// reply is either [ErrValueMismatch] or [ErrServerError] regardless of
// whether its body decodes. A 200 reply must decode into an object and, when
// includeTag is set and tag checking is enabled, carry a valid tag.
func (a *deviceAdapter) SendTagged(ctx context.Context, doc *document.Document, endpoint string, includeValue, includeTag bool, ts time.Time) error {
	if err := a.pack(doc, includeValue, includeTag, ts); err != nil {
		return err
	}

	body, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLibRequest, err)
	}

	status, respBody, err := a.transport.Post(ctx, endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerError, err)
	}

	decodeErr := doc.Decode(respBody)
	if status != http.StatusOK {
		var decoded *document.Document
		if decodeErr == nil {
			decoded = doc
		}
		err = mapResponseError(status, respBody, decoded)
		a.logger.Debug().
			Str("func", "deviceAdapter.SendTagged").
			Str("serial", a.device.Serial).
			Str("endpoint", endpoint).
			Int("status", status).
			Err(err).
			Msg("request rejected")
		return err
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: %w", ErrResponseDeserialization, decodeErr)
	}

	if includeTag && !a.device.SkipTagCheck {
		if err = a.verifyTag(doc); err != nil {
			a.logger.Warn().
				Str("func", "deviceAdapter.SendTagged").
				Str("serial", a.device.Serial).
				Str("endpoint", endpoint).
				Msg("response tag mismatch")
			return err
		}
	}

	if includeValue {
		a.device.Value++
	}

	return nil
}

// pack writes serial, firmware, hardware and timestamp, then the counter
// and the tag when requested. Existing keys keep their position.
func (a *deviceAdapter) pack(doc *document.Document, includeValue, includeTag bool, ts time.Time) error {
	doc.Set(validators.FieldSerial, a.device.Serial)
	doc.Set(validators.FieldFirmware, a.device.Firmware)
	doc.Set(validators.FieldHardware, a.device.Hardware)
	doc.Set(validators.FieldTimestamp, formatTimestamp(ts))

	if includeValue {
		doc.Set(validators.FieldValue, a.device.Value)
	}

	if !includeTag {
		return nil
	}

	doc.Set(validators.FieldTag, tagPlaceholder)
	if a.device.SkipTagCheck {
		return nil
	}

	body, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLibRequest, err)
	}
	doc.Set(validators.FieldTag, a.hasher.SumHex(body))

	return nil
}

// verifyTag recomputes the tag of a response document. The received tag is
// put back afterwards so callers see the document as it arrived.
func (a *deviceAdapter) verifyTag(doc *document.Document) error {
	received, ok := doc.GetString(validators.FieldTag)
	if !ok {
		return fmt.Errorf("%w: response carries no tag", ErrTagMismatch)
	}

	doc.Set(validators.FieldTag, tagPlaceholder)
	body, err := doc.Encode()
	doc.Set(validators.FieldTag, received)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResponseDeserialization, err)
	}

	if !a.hasher.Verify(body, received) {
		return ErrTagMismatch
	}

	return nil
}

func formatTimestamp(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339)
}
