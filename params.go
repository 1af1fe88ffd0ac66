package crmtext

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/adamwoolhether/crmtext/xmltree"
)

// dateTimeLayout matches an ISO-8601 timestamp with a numeric offset.
const dateTimeLayout = "2006-01-02T15:04:05-07:00"

// FormatDate renders t the way the API expects dates: YYYY-MM-DD when t
// falls exactly on midnight, a full ISO-8601 timestamp otherwise.
// Timestamps are truncated to whole seconds; sub-second precision is not sent.
func FormatDate(t time.Time) string {
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}

	return t.Format(dateTimeLayout)
}

// DateRange bounds the message history queries. End must not precede Start.
type DateRange struct {
	Start time.Time `url:"startdate" validate:"required"`
	End   time.Time `url:"enddate" validate:"required,gtefield=Start"`
}

// EncodeValues implements query.Encoder.
func (r DateRange) EncodeValues(_ string, v *url.Values) error {
	v.Set("startdate", FormatDate(r.Start))
	v.Set("enddate", FormatDate(r.End))
	return nil
}

// StoreAndUser holds the fields for [Conn.CreateStoreAndUser].
type StoreAndUser struct {
	StoreName    string `url:"storename" validate:"required"`
	StoreKeyword string `url:"storeKeyword" validate:"required"`
	FirstName    string `url:"firstname" validate:"required"`
	LastName     string `url:"lastname" validate:"required"`
	Email        string `url:"emailid" validate:"required,email"`
	PhoneNumber  string `url:"phonenumber" validate:"required"`
	Password     string `url:"password" validate:"required"`
}

// SendOption sets the optional fields of [Conn.SendSMS].
type SendOption func(*sendParams)

// WithMessage sets the text of the message.
func WithMessage(message string) SendOption {
	return func(p *sendParams) {
		p.Message = message
	}
}

// WithMMSURL attaches media, turning the message into an MMS.
func WithMMSURL(mmsURL string) SendOption {
	return func(p *sendParams) {
		p.MMSURL = mmsURL
	}
}

// /////////////////////////////////////////////////////////////////

type customerParams struct {
	FirstName   string `url:"firstname" validate:"required"`
	LastName    string `url:"lastname" validate:"required"`
	PhoneNumber string `url:"phone_number" validate:"required"`
}

type phoneParams struct {
	PhoneNumber string `url:"phone_number" validate:"required"`
}

type callbackParams struct {
	Callback string `url:"callback" validate:"required,url"`
}

type sendParams struct {
	PhoneNumber string `url:"phone_number" validate:"required"`
	Message     string `url:"message,omitempty"`
	MMSURL      string `url:"mmsurl,omitempty" validate:"omitempty,url"`
}

type campaignParams struct {
	Name    string `url:"name" validate:"required"`
	Message string `url:"message" validate:"required"`
}

type keywordParams struct {
	Keyword string `url:"keyword" validate:"required"`
}

type autoresponderParams struct {
	Keyword       string `url:"keyword" validate:"required"`
	Autoresponder string `url:"autoresponder" validate:"required"`
}

type textCodeMsgParams struct {
	TextCode    string `url:"textcode" validate:"required"`
	OptInMsg    string `url:"optinmsg" validate:"required"`
	NonOptInMsg string `url:"nonoptinmsg" validate:"required"`
}

type statusParams struct {
	Status string `url:"status" validate:"required"`
	Offset int    `url:"offset" validate:"gte=0"`
	Count  int    `url:"count" validate:"gte=0"`
}

type mobileMsgsParams struct {
	PhoneNumber string    `url:"phone_number" validate:"required"`
	Range       DateRange `url:"range"`
	StartCount  int       `url:"startcount" validate:"gte=0"`
	MsgCount    int       `url:"msgcount" validate:"gte=0"`
}

type rangeParams struct {
	Range DateRange `url:"range"`
}

// form validates params and encodes them together with the method
// discriminator. A nil params yields a form holding only the method.
func form(method string, params any) (url.Values, error) {
	if params == nil {
		return url.Values{"method": {method}}, nil
	}

	if err := Validate(params); err != nil {
		return nil, err
	}

	v, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encoding params: %w", err)
	}
	v.Set("method", method)

	return v, nil
}

// call is the common path of every operation.
func (c *Conn) call(ctx context.Context, method string, params any) (*xmltree.Element, error) {
	f, err := form(method, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return c.do(ctx, method, f)
}
