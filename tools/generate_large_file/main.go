// Large Journal Generator
//
// This tool generates a large hledger journal for performance testing and
// profiling. It mixes transactions, directives, comments and balance
// assertions to stress-test the parser and formatter.
//
// Usage:
//
//	go run main.go > large.journal
//	go run main.go 20000000 > large.journal  # Specify target size in bytes
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
)

var (
	accounts = []string{
		"assets:bank:checking",
		"assets:bank:savings",
		"assets:brokerage:cash",
		"assets:brokerage:funds",
		"assets:cash",
		"liabilities:credit card:visa",
		"liabilities:credit card:amex",
		"income:salary",
		"income:bonus",
		"income:dividends",
		"income:interest",
		"expenses:food:groceries",
		"expenses:food:restaurant",
		"expenses:housing:rent",
		"expenses:housing:utilities",
		"expenses:transport:gas",
		"expenses:transport:transit",
		"expenses:shopping:clothing",
		"expenses:shopping:electronics",
		"expenses:entertainment",
		"expenses:healthcare",
		"expenses:taxes:federal",
		"expenses:taxes:state",
		"equity:opening balances",
	}

	descriptions = []string{
		"grocery shopping", "fuel purchase", "rent payment",
		"salary deposit", "fund purchase", "utility bill",
		"online purchase", "restaurant dinner", "coffee",
		"monthly subscription", "medical appointment",
		"investment contribution", "dividend payment",
		"tax payment", "insurance premium", "gift",
	}

	notes = []string{
		"personal", "business", "vacation", "tax-deductible",
		"reimbursable", "investment", "savings",
	}

	commodities = []string{"$", "USD", "EUR", "kr"}
	funds       = []string{"VTI", "VXUS", "BND", "VNQ"}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}

	writeHeader()

	startDate := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	currentDate := startDate

	bytesWritten := 0
	transactionCount := 0

	for bytesWritten < targetSize {
		switch rand.Intn(10) {
		case 0, 1, 2, 3: // 40% - Simple transaction
			output := generateSimpleTransaction(currentDate)
			fmt.Print(output)
			bytesWritten += len(output)
			transactionCount++

		case 4, 5: // 20% - Transaction with comments
			output := generateCommentedTransaction(currentDate)
			fmt.Print(output)
			bytesWritten += len(output)
			transactionCount++

		case 6: // 10% - Investment transaction with price
			output := generateInvestmentTransaction(currentDate)
			fmt.Print(output)
			bytesWritten += len(output)
			transactionCount++

		case 7: // 10% - Transaction with balance assertion
			output := generateAssertedTransaction(currentDate)
			fmt.Print(output)
			bytesWritten += len(output)
			transactionCount++

		case 8: // 10% - Price directive
			output := generatePriceDirective(currentDate)
			fmt.Print(output)
			bytesWritten += len(output)

		case 9: // 10% - Standalone comment block
			output := generateCommentBlock()
			fmt.Print(output)
			bytesWritten += len(output)
		}

		// Advance date by 1-5 days
		currentDate = currentDate.AddDate(0, 0, rand.Intn(5)+1)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d transactions\n", bytesWritten, transactionCount)
}

func writeHeader() {
	fmt.Println("; Large journal for performance testing")
	fmt.Println("; Generated:", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Println("decimal-mark .")
	fmt.Println("commodity $1000.00")
	fmt.Println("commodity 1000.00 USD")
	fmt.Println()

	fmt.Println("; Account declarations")
	for _, account := range accounts {
		fmt.Printf("account %s\n", account)
	}
	fmt.Println()
}

func generateSimpleTransaction(date time.Time) string {
	dateStr := date.Format("2006-01-02")
	description := descriptions[rand.Intn(len(descriptions))]
	amount := randAmount(10, 500)

	acc1 := accounts[rand.Intn(len(accounts))]
	acc2 := accounts[rand.Intn(len(accounts))]

	return fmt.Sprintf(`%s %s
  %s  $%s
  %s  $%s

`, dateStr, description, acc1, amount, acc2, negateAmount(amount))
}

func generateCommentedTransaction(date time.Time) string {
	dateStr := date.Format("2006-01-02")
	description := descriptions[rand.Intn(len(descriptions))]
	note := notes[rand.Intn(len(notes))]
	amount := randAmount(50, 1000)

	acc1 := accounts[rand.Intn(len(accounts))]
	acc2 := accounts[rand.Intn(len(accounts))]

	return fmt.Sprintf(`%s %s  ; %s
  ; receipt %d
  %s  $%s  ; %s
  %s  $%s

`, dateStr, description, note, rand.Intn(10000), acc1, amount, note, acc2, negateAmount(amount))
}

func generateInvestmentTransaction(date time.Time) string {
	dateStr := date.Format("2006-01-02")
	fund := funds[rand.Intn(len(funds))]
	shares := rand.Intn(50) + 1
	pricePerShare := randAmount(50, 500)
	totalCost := calculateTotal(shares, pricePerShare)

	return fmt.Sprintf(`%s buy %s
  assets:brokerage:funds  %d %s @ $%s
  assets:brokerage:cash  $-%s

`, dateStr, fund, shares, fund, pricePerShare, totalCost)
}

func generateAssertedTransaction(date time.Time) string {
	dateStr := date.Format("2006-01-02")
	amount := randAmount(100, 2000)
	balance := randAmount(1000, 50000)

	acc := accounts[rand.Intn(len(accounts))]

	return fmt.Sprintf(`%s balance check
  assets:bank:checking  $%s = $%s
  %s  $%s

`, dateStr, amount, balance, acc, negateAmount(amount))
}

func generatePriceDirective(date time.Time) string {
	dateStr := date.Format("2006-01-02")
	fund := funds[rand.Intn(len(funds))]
	price := randAmount(50, 500)

	return fmt.Sprintf("P %s %s $%s\n\n", dateStr, fund, price)
}

func generateCommentBlock() string {
	note := notes[rand.Intn(len(notes))]
	return fmt.Sprintf("; %s\n; reviewed %d\n\n", note, rand.Intn(100000))
}

// Helper functions

func randAmount(min, max float64) string {
	amount := min + rand.Float64()*(max-min)
	return fmt.Sprintf("%.2f", amount)
}

func parseAmount(amountStr string) float64 {
	val, _ := strconv.ParseFloat(amountStr, 64)
	return val
}

func negateAmount(amountStr string) string {
	val := parseAmount(amountStr)
	return fmt.Sprintf("%.2f", -val)
}

func calculateTotal(shares int, pricePerShare string) string {
	price := parseAmount(pricePerShare)
	return fmt.Sprintf("%.2f", float64(shares)*price)
}
