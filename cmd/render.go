package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Laincy/kromer2-api/api"
	"github.com/fatih/color"
)

const timeLayout = "2006-01-02 15:04:05 MST"

func printAddress(w io.Writer, addr *api.Address) {
	fmt.Fprintf(w, "📍 Address: %s\n", color.CyanString(addr.Address))
	fmt.Fprintf(w, "💰 Balance: %s KRO\n", color.GreenString(addr.Balance.String()))
	fmt.Fprintf(w, "   In: %s | Out: %s\n", addr.TotalIn.String(), addr.TotalOut.String())
	fmt.Fprintf(w, "🕒 First seen: %s\n", addr.FirstSeen.Format(timeLayout))
	if addr.Names != nil {
		fmt.Fprintf(w, "🏷  Names: %d\n", *addr.Names)
	}
}

func printAddressTable(w io.Writer, addrs []api.Address, offset uint) {
	if len(addrs) == 0 {
		fmt.Fprintln(w, "No addresses found")
		return
	}

	for i, addr := range addrs {
		fmt.Fprintf(w, "%4d. %-10s %s KRO  (first seen %s)\n",
			offset+uint(i)+1,
			addr.Address,
			color.GreenString(addr.Balance.StringFixed(2)),
			addr.FirstSeen.Format("2006-01-02"))
	}
}

// typeLabel colors a transaction type for display.
func typeLabel(t api.TransactionType) string {
	label := strings.ReplaceAll(string(t), "_", " ")
	switch t {
	case api.TransactionMined:
		return color.YellowString(label)
	case api.TransactionTransfer:
		return color.GreenString(label)
	case api.TransactionNamePurchase, api.TransactionNameARecord, api.TransactionNameTransfer:
		return color.CyanString(label)
	default:
		return color.RedString(label)
	}
}

func printTransactions(w io.Writer, owner string, txs []api.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "No transactions found")
		return
	}

	for _, tx := range txs {
		from := "(mined)"
		if tx.From != nil {
			from = *tx.From
		}

		direction := "➡️"
		amount := tx.Value.String()
		if tx.To == owner && (tx.From == nil || *tx.From != owner) {
			direction = "⬅️"
			amount = color.GreenString("+" + amount)
		} else if tx.From != nil && *tx.From == owner {
			amount = color.RedString("-" + amount)
		}

		fmt.Fprintf(w, "%s #%d %s %s KRO | %s -> %s | %s\n",
			direction, tx.ID, typeLabel(tx.Type), amount, from, tx.To, tx.Time.Format(timeLayout))

		if tx.Name != nil {
			fmt.Fprintf(w, "     Name: %s\n", *tx.Name)
		}
		if tx.Metadata != nil && *tx.Metadata != "" {
			fmt.Fprintf(w, "     Metadata: %s\n", *tx.Metadata)
		}
	}
}

func printMotd(w io.Writer, motd *api.Motd, node string) {
	fmt.Fprintf(w, "📢 %s\n", color.New(color.Bold).Sprint(motd.Msg))
	if motd.Notice != "" {
		fmt.Fprintf(w, "⚠️  %s\n", color.YellowString(motd.Notice))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "🌐 Node: %s\n", node)
	fmt.Fprintf(w, "   Public URL: %s\n", motd.PublicURL)
	fmt.Fprintf(w, "   Websocket:  %s\n", motd.PublicWSURL)
	fmt.Fprintf(w, "💱 Currency: %s (%s), addresses start with %q, names end in .%s\n",
		motd.Currency.Name, motd.Currency.Symbol, motd.Currency.AddressPrefix, motd.Currency.NameSuffix)
	fmt.Fprintf(w, "📦 %s v%s by %s (%s)\n",
		motd.Package.Name, motd.Package.Version, motd.Package.Author, motd.Package.License)
	fmt.Fprintf(w, "   %s\n", motd.Package.Repository)

	status := color.GreenString("enabled")
	if !motd.TransactionsEnabled {
		status = color.RedString("disabled")
	}
	fmt.Fprintf(w, "💸 Transactions: %s\n", status)
	if motd.DebugMode {
		fmt.Fprintf(w, "🐞 %s\n", color.YellowString("Debug mode is on"))
	}
}

func elapsedLine(w io.Writer, start time.Time) {
	fmt.Fprintf(w, "\n⏱️ Loaded in %v\n", time.Since(start).Round(time.Millisecond*10))
}
