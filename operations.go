package crmtext

import (
	"context"

	"github.com/adamwoolhether/crmtext/xmltree"
)

// Remote method names, sent verbatim in the `method` form field.
const (
	MethodOptInCustomer           = "optincustomer"
	MethodOptOutCustomer          = "optoutcustomer"
	MethodGetCallback             = "getcallback"
	MethodSetCallback             = "setcallback"
	MethodSendSMS                 = "sendsmsmsg"
	MethodSendCampaign            = "sendcampaign"
	MethodIsKeywordAvailable      = "iskeywordavailable"
	MethodCreateStoreAndUser      = "createstoreanduser"
	MethodCreateKeyword           = "createkeyword"
	MethodChangeStoreTextCodeMsg  = "changestoretextcodemsg"
	MethodDeleteKeyword           = "deletekeyword"
	MethodGetCustomersByStatus    = "getcustbystatus"
	MethodGetCustomerInfo         = "getcustomerinfo"
	MethodGetCustomerMsgsByMobile = "getcustmsgsbymobile"
	MethodGetInboundMsgs          = "getinboundmsgs"
	MethodGetOutboundMsgs         = "getoutboundmsgs"
)

// OptInCustomer subscribes a customer to the store.
func (c *Conn) OptInCustomer(ctx context.Context, firstname, lastname, phone string) (*xmltree.Element, error) {
	return c.call(ctx, MethodOptInCustomer, customerParams{
		FirstName:   firstname,
		LastName:    lastname,
		PhoneNumber: phone,
	})
}

// OptOutCustomer unsubscribes a customer.
func (c *Conn) OptOutCustomer(ctx context.Context, phone string) (*xmltree.Element, error) {
	return c.call(ctx, MethodOptOutCustomer, phoneParams{PhoneNumber: phone})
}

// GetCallback returns the callback URL configured for the store.
func (c *Conn) GetCallback(ctx context.Context) (*xmltree.Element, error) {
	return c.call(ctx, MethodGetCallback, nil)
}

// SetCallback sets the URL the service notifies on inbound events.
func (c *Conn) SetCallback(ctx context.Context, callback string) (*xmltree.Element, error) {
	return c.call(ctx, MethodSetCallback, callbackParams{Callback: callback})
}

// SendSMS sends a message to a single phone number. The message text and
// the MMS media URL are both optional and only sent when set.
func (c *Conn) SendSMS(ctx context.Context, phone string, opts ...SendOption) (*xmltree.Element, error) {
	p := sendParams{PhoneNumber: phone}
	for _, opt := range opts {
		opt(&p)
	}

	return c.call(ctx, MethodSendSMS, p)
}

// SendCampaign broadcasts message to the opted-in customers under a campaign name.
func (c *Conn) SendCampaign(ctx context.Context, name, message string) (*xmltree.Element, error) {
	return c.call(ctx, MethodSendCampaign, campaignParams{Name: name, Message: message})
}

func (c *Conn) IsKeywordAvailable(ctx context.Context, keyword string) (*xmltree.Element, error) {
	return c.call(ctx, MethodIsKeywordAvailable, keywordParams{Keyword: keyword})
}

// CreateStoreAndUser creates a new store and its primary user.
func (c *Conn) CreateStoreAndUser(ctx context.Context, s StoreAndUser) (*xmltree.Element, error) {
	return c.call(ctx, MethodCreateStoreAndUser, s)
}

func (c *Conn) CreateKeyword(ctx context.Context, keyword, autoresponder string) (*xmltree.Element, error) {
	return c.call(ctx, MethodCreateKeyword, autoresponderParams{Keyword: keyword, Autoresponder: autoresponder})
}

// ChangeStoreTextCodeMsg replaces the replies sent to customers texting
// textcode, for opted-in and not-yet-opted-in senders.
func (c *Conn) ChangeStoreTextCodeMsg(ctx context.Context, textcode, optinmsg, nonoptinmsg string) (*xmltree.Element, error) {
	return c.call(ctx, MethodChangeStoreTextCodeMsg, textCodeMsgParams{
		TextCode:    textcode,
		OptInMsg:    optinmsg,
		NonOptInMsg: nonoptinmsg,
	})
}

func (c *Conn) DeleteKeyword(ctx context.Context, keyword, autoresponder string) (*xmltree.Element, error) {
	return c.call(ctx, MethodDeleteKeyword, autoresponderParams{Keyword: keyword, Autoresponder: autoresponder})
}

// GetCustomersByStatus lists customers with the given status, a page of
// count entries starting at offset.
func (c *Conn) GetCustomersByStatus(ctx context.Context, status string, offset, count int) (*xmltree.Element, error) {
	return c.call(ctx, MethodGetCustomersByStatus, statusParams{Status: status, Offset: offset, Count: count})
}

func (c *Conn) GetCustomerInfo(ctx context.Context, phone string) (*xmltree.Element, error) {
	return c.call(ctx, MethodGetCustomerInfo, phoneParams{PhoneNumber: phone})
}

// GetCustomerMsgsByMobile lists the messages exchanged with one phone
// number within r, msgcount entries starting at startcount.
func (c *Conn) GetCustomerMsgsByMobile(ctx context.Context, phone string, r DateRange, startcount, msgcount int) (*xmltree.Element, error) {
	return c.call(ctx, MethodGetCustomerMsgsByMobile, mobileMsgsParams{
		PhoneNumber: phone,
		Range:       r,
		StartCount:  startcount,
		MsgCount:    msgcount,
	})
}

// GetInboundMsgs lists messages received by the store within r.
func (c *Conn) GetInboundMsgs(ctx context.Context, r DateRange) (*xmltree.Element, error) {
	return c.call(ctx, MethodGetInboundMsgs, rangeParams{Range: r})
}

// GetOutboundMsgs lists messages sent by the store within r.
func (c *Conn) GetOutboundMsgs(ctx context.Context, r DateRange) (*xmltree.Element, error) {
	return c.call(ctx, MethodGetOutboundMsgs, rangeParams{Range: r})
}
