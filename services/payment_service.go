package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"tourbooking/entity"
	"tourbooking/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const gatewayProvider = "gateway"

// GatewaySigner signs redirect/callback query strings with HMAC-SHA256.
// The signed payload is url.Values.Encode() of every param except "signature".
type GatewaySigner struct {
	secret []byte
}

func NewGatewaySigner(secret string) *GatewaySigner {
	return &GatewaySigner{secret: []byte(secret)}
}

func (g *GatewaySigner) Sign(params url.Values) string {
	unsigned := url.Values{}
	for k, v := range params {
		if k == "signature" {
			continue
		}
		unsigned[k] = v
	}
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(unsigned.Encode()))
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *GatewaySigner) Verify(params url.Values) bool {
	got, err := hex.DecodeString(params.Get("signature"))
	if err != nil || len(got) == 0 {
		return false
	}
	want, _ := hex.DecodeString(g.Sign(params))
	return hmac.Equal(got, want)
}

type PaymentService struct {
	DB       *gorm.DB
	Repo     *repository.PaymentRepository
	Bookings *BookingService
	Signer   *GatewaySigner

	GatewayURL string
	ReturnURL  string

	now func() time.Time
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	bookings *BookingService,
	signer *GatewaySigner,
	gatewayURL, returnURL string,
) *PaymentService {
	return &PaymentService{
		DB: db, Repo: repo, Bookings: bookings, Signer: signer,
		GatewayURL: gatewayURL, ReturnURL: returnURL,
		now: time.Now,
	}
}

type Checkout struct {
	PaymentURL string          `json:"paymentUrl"`
	Payment    *entity.Payment `json:"payment"`
}

// CreateCheckout สร้าง payment (pending) แล้วคืน URL สำหรับ redirect ไป gateway
func (s *PaymentService) CreateCheckout(userID, bookingID uint) (*Checkout, error) {
	b, err := s.Bookings.Detail(userID, entity.RoleUser, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != entity.BookingPending {
		return nil, fmt.Errorf("booking is %s: %w", b.Status, ErrConflict)
	}

	// one open checkout per booking; a repeated click gets the same txnRef
	p, err := s.Repo.FindPendingByBooking(b.ID)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		p = &entity.Payment{
			Amount:    b.TotalPrice,
			TxnRef:    uuid.NewString(),
			Provider:  gatewayProvider,
			Status:    entity.PaymentPending,
			BookingID: b.ID,
		}
		if err := s.Repo.Create(p); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	params := url.Values{}
	params.Set("amount", strconv.FormatInt(p.Amount, 10))
	params.Set("txnRef", p.TxnRef)
	params.Set("orderInfo", fmt.Sprintf("Booking #%d", b.ID))
	params.Set("returnUrl", s.ReturnURL)
	params.Set("signature", s.Signer.Sign(params))

	u, err := url.Parse(s.GatewayURL)
	if err != nil {
		return nil, fmt.Errorf("gateway url: %w", err)
	}
	u.RawQuery = params.Encode()
	return &Checkout{PaymentURL: u.String(), Payment: p}, nil
}

// HandleReturn processes the gateway callback. Settled payments are returned unchanged.
func (s *PaymentService) HandleReturn(params url.Values) (*entity.Payment, error) {
	if !s.Signer.Verify(params) {
		return nil, ErrInvalidSignature
	}
	p, err := s.Repo.FindByTxnRef(params.Get("txnRef"))
	if err != nil {
		return nil, notFound(err, "payment")
	}
	if p.Status != entity.PaymentPending {
		return p, nil
	}

	success := params.Get("status") == "success"
	if amt := params.Get("amount"); success && amt != "" && amt != strconv.FormatInt(p.Amount, 10) {
		log.Printf("⚠️ payment %s amount mismatch: got %s want %d", p.TxnRef, amt, p.Amount)
		success = false
	}

	confirmed := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if success {
			ok, err := s.Bookings.ConfirmInTx(tx, p.BookingID)
			if err != nil {
				return err
			}
			if !ok {
				log.Printf("⚠️ payment %s: booking %d is no longer pending, marking failed", p.TxnRef, p.BookingID)
			}
			confirmed = ok
		}
		if !confirmed {
			_, err := s.Repo.Settle(tx, p.ID, entity.PaymentFailed, nil)
			return err
		}
		n, err := s.Repo.Settle(tx, p.ID, entity.PaymentPaid, map[string]any{"paid_at": s.now()})
		if err != nil {
			return err
		}
		if n == 0 {
			// settled concurrently; undo the confirm
			confirmed = false
			return ErrConflict
		}
		return nil
	})
	if errors.Is(err, ErrConflict) {
		return s.Repo.FindByTxnRef(p.TxnRef)
	}
	if err != nil {
		return nil, err
	}

	if confirmed {
		if b, err := s.Bookings.Repo.FindByID(p.BookingID); err == nil {
			s.Bookings.publish("booking."+string(entity.BookingConfirmed), b)
		}
	}
	return s.Repo.FindByTxnRef(p.TxnRef)
}
