package apple

import "strings"

func tabs(fields ...string) string {
	return strings.Join(fields, "\t")
}

var csvReport = strings.Join([]string{
	"iTunes Connect - Payments and Financial Reports (June, 2025)",
	"",
	"Country or Region (Currency),Units,Earned,Pre-Tax Subtotal,Input Tax,Adjustments,Withholding Tax,Total Owed,Exchange Rate,Proceeds,Bank Account Currency",
	`"Germany (EUR)",12,"20.28","20.28","0.00","0.00","0.00","20.28","1.00000","17.04",EUR`,
	`"Korea, Republic of (KRW)",2,"2200","2200","0","0","0","2200","0.00064","1.20",EUR`,
	`"France (EUR)",3`,
	",,,,,,,,,,",
	`,,,,,,,,,Total Paid,"18.30 EUR"`,
	`"Japan (JPY)",-1,"-300","-300","0","0","0","-300","0.0060","-1.54",EUR`,
}, "\n")

var fdHeader = tabs("Transaction Date", "Settlement Date", "Apple Identifier", "SKU", "Title", "Offer Name",
	"Product Type Identifier", "Customer Currency", "Country Of Sale", "Quantity", "Partner Share",
	"Extended Partner Share", "Partner Share Currency", "Customer Price")

var fdReport = strings.Join([]string{
	tabs("Vendor Name", "Example Apps GmbH"),
	tabs("Vendor ID", "12345678"),
	tabs("Start Date", "06/01/2025"),
	tabs("End Date", "06/30/2025"),
	"",
	fdHeader,
	tabs("06/03/2025", "06/30/2025", "1234567890", "com.example.pro", "Example Pro", "", "IAY", "USD", "US", "2", "6.99", "13.98", "EUR", "9.99"),
	tabs("06/10/2025", "06/30/2025", "1234567890", "com.example.pro", "Example Pro", "", "IAY", "EUR", "DE", "-1", "-6.99", "-6.99", "EUR", "-9.99"),
	tabs("06/11/2025", "06/30/2025", "broken"),
	"",
	tabs("6/12/2025", "6/30/2025", "1", "sku3", "Title Three", "", "IAY", "EUR", "FR", "1", "3.50"),
	"",
	tabs("Country Of Sale", "Partner Share Currency", "Quantity", "Extended Partner Share"),
	tabs("06/13/2025", "06/30/2025", "1", "late", "Ignored", "", "IAY", "EUR", "IT", "1", "100.00", "100.00", "EUR", "120.00"),
}, "\n")
