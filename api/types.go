package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Address is a snapshot of an address as reported by the node.
type Address struct {
	Address   string          `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	TotalIn   decimal.Decimal `json:"totalin"`
	TotalOut  decimal.Decimal `json:"totalout"`
	FirstSeen time.Time       `json:"firstseen"`
	Names     *uint32         `json:"names"` // only set when names were requested
}

func (a *Address) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}

	var out Address
	if err := f.required(&out.Address, "address"); err != nil {
		return err
	}
	if err := f.required(&out.Balance, "balance"); err != nil {
		return err
	}
	if err := f.required(&out.TotalIn, "totalin", "total_in"); err != nil {
		return err
	}
	if err := f.required(&out.TotalOut, "totalout", "total_out"); err != nil {
		return err
	}
	if err := f.required(&out.FirstSeen, "firstseen", "first_seen"); err != nil {
		return err
	}
	if err := f.optional(&out.Names, "names"); err != nil {
		return err
	}
	out.FirstSeen = out.FirstSeen.UTC()

	*a = out
	return nil
}

// TransactionType tags what a transaction did.
type TransactionType string

const (
	TransactionMined        TransactionType = "mined"
	TransactionUnknown      TransactionType = "unknown"
	TransactionNamePurchase TransactionType = "name_purchase"
	TransactionNameARecord  TransactionType = "name_a_record"
	TransactionNameTransfer TransactionType = "name_transfer"
	TransactionTransfer     TransactionType = "transfer"
)

// ParseTransactionType returns the type for its wire name. Unrecognized
// names are an error.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TransactionMined, TransactionUnknown, TransactionNamePurchase,
		TransactionNameARecord, TransactionNameTransfer, TransactionTransfer:
		return t, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

func (t TransactionType) MarshalText() ([]byte, error) {
	if _, err := ParseTransactionType(string(t)); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

func (t *TransactionType) UnmarshalText(text []byte) error {
	parsed, err := ParseTransactionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Transaction represents one entry of an address history
type Transaction struct {
	ID           int64           `json:"id"`
	From         *string         `json:"from"` // nil for mined blocks
	To           string          `json:"to"`
	Value        decimal.Decimal `json:"value"`
	Time         time.Time       `json:"time"`
	Name         *string         `json:"name"`
	Metadata     *string         `json:"metadata"`
	SentMetaname *string         `json:"sent_metaname"`
	SentName     *string         `json:"sent_name"`
	Type         TransactionType `json:"type"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}

	var out Transaction
	if err := f.required(&out.ID, "id"); err != nil {
		return err
	}
	if err := f.optional(&out.From, "from"); err != nil {
		return err
	}
	if err := f.required(&out.To, "to"); err != nil {
		return err
	}
	if err := f.required(&out.Value, "value"); err != nil {
		return err
	}
	if err := f.required(&out.Time, "time"); err != nil {
		return err
	}
	if err := f.optional(&out.Name, "name"); err != nil {
		return err
	}
	if err := f.optional(&out.Metadata, "metadata"); err != nil {
		return err
	}
	if err := f.optional(&out.SentMetaname, "sent_metaname"); err != nil {
		return err
	}
	if err := f.optional(&out.SentName, "sent_name"); err != nil {
		return err
	}

	var kind string
	if err := f.required(&kind, "type"); err != nil {
		return err
	}
	if out.Type, err = ParseTransactionType(kind); err != nil {
		return err
	}
	out.Time = out.Time.UTC()

	*t = out
	return nil
}

// Motd is the node's message of the day along with its public configuration.
type Motd struct {
	Msg                 string   `json:"motd"`
	PublicURL           string   `json:"public_url"`
	PublicWSURL         string   `json:"public_ws_url"`
	TransactionsEnabled bool     `json:"transactions_enabled"`
	DebugMode           bool     `json:"debug_mode"`
	Package             Package  `json:"package"`
	Currency            Currency `json:"currency"`
	Notice              string   `json:"notice"`
}

func (m *Motd) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}

	var out Motd
	for _, member := range []struct {
		dst   any
		names []string
	}{
		{&out.Msg, []string{"motd", "msg"}},
		{&out.PublicURL, []string{"public_url"}},
		{&out.PublicWSURL, []string{"public_ws_url"}},
		{&out.TransactionsEnabled, []string{"transactions_enabled"}},
		{&out.DebugMode, []string{"debug_mode"}},
		{&out.Package, []string{"package"}},
		{&out.Currency, []string{"currency"}},
		{&out.Notice, []string{"notice"}},
	} {
		if err := f.required(member.dst, member.names...); err != nil {
			return err
		}
	}

	*m = out
	return nil
}

// Package describes the server software.
type Package struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Author     string `json:"author"`
	License    string `json:"licence"`
	Repository string `json:"repository"`
}

func (p *Package) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}

	var out Package
	for _, member := range []struct {
		dst   *string
		names []string
	}{
		{&out.Name, []string{"name"}},
		{&out.Version, []string{"version"}},
		{&out.Author, []string{"author"}},
		{&out.License, []string{"licence", "license"}},
		{&out.Repository, []string{"repository"}},
	} {
		if err := f.required(member.dst, member.names...); err != nil {
			return err
		}
	}

	*p = out
	return nil
}

// Currency describes the node's currency.
type Currency struct {
	AddressPrefix string `json:"address_prefix"`
	NameSuffix    string `json:"name_suffix"`
	Name          string `json:"currency_name"`
	Symbol        string `json:"currency_symbol"`
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}

	var out Currency
	for _, member := range []struct {
		dst   *string
		names []string
	}{
		{&out.AddressPrefix, []string{"address_prefix"}},
		{&out.NameSuffix, []string{"name_suffix"}},
		{&out.Name, []string{"currency_name", "name"}},
		{&out.Symbol, []string{"currency_symbol", "symbol"}},
	} {
		if err := f.required(member.dst, member.names...); err != nil {
			return err
		}
	}

	*c = out
	return nil
}
