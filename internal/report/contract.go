// Package report renders the printable documents of the rental operation:
// performance report exports, rental contracts and pickup orders.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/locdecor/locdecor/internal/domain"
)

const (
	lessorName    = "Cláudia Amélia Gonçalves"
	lessorCPF     = "330.897.318-94"
	lessorAddress = "Rua João Carlos Espíndola, 141 - Palhoça - SC"

	companyName  = "LocDecor"
	companyLine  = "Aluguel de Decorações para Eventos"
	companyPhone = "Tel: (XX) XXXX-XXXX"
	companyEmail = "Email: contato@locdecor.com"
)

var contractClauses = []string{
	"Pelo presente contrato de locação, é dever do locador oferecer o serviço de locação ao locatário, respeitando dia e horário marcados;",
	"É dever do locatário para locação durante a semana, respeitar o período de 24h de locação e para os finais de semana fica combinado que o locatário deverá retirar o kit na sexta-feira das 10h às 18h e realizar a devolução na segunda-feira das 10h às 18h. O DESCUMPRIMENTO DA DATA COMBINADA PARA A DEVOLUÇÃO ACARRETARÁ EM MULTA NO MESMO VALOR DA LOCAÇÃO (R$ 120,00), exceto se houver uma justificativa anterior;",
	"O locatário deve ficar ciente de que, se não devolver o kit, será denunciado por furto pela empresa Festa Fantástica. Isso se dará através de uma ação pelo advogado da empresa, que usará o número do documento do locador, citado acima;",
	"Durante o período de locação, fica o locatário responsável por qualquer dano causado aos objetos de decoração, estando portanto, ciente que deverá pagar taxas correspondentes aos danos e caso o material seja entregue sujo será cobrado;",
	"", // filled per order with the replacement price list
	"O locatário deve estar ciente de que não pode utilizar nenhum tipo de cola nas capas de cilindros/painel ou em qualquer outro item do kit locado. Deve-se tomar cuidado com velas nas capas, pois pode queimá-las e estragá-las. Não colocar copos ou latas de bebidas em cima da mesa de cilindros pois pode molhar e estragar o MDF. Nossas boleiras e bandejas são de acrílico/plástico, se cair podem quebrar;",
	"Os móveis e itens decorativos devem ficar em local coberto e seco;",
	"Não é permitido retirar ou devolver o kit por aplicativo de entrega (Uber, 99, Lalamove), exceto se o cliente estiver presente;",
	"Caso haja desistência o valor não será devolvido. Se avisado previamente, o valor pago ficará como crédito para uma próxima locação, sendo que para troca de data verificaremos se a data haverá disponibilidade.",
	"DEPOIS DE FECHADO O CONTRATO NÃO PODERÁ ALTERAR O TEMA ESCOLHIDO.",
}

// damageClause lists the replacement price of every rented item, charged when
// material comes back damaged
func damageClause(items []domain.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, line := range items {
		price := "N/A"
		if line.Item != nil && line.Item.AcquisitionPrice != nil {
			price = fmt.Sprintf("R$ %s", line.Item.AcquisitionPrice.StringFixed(2))
		}
		name := ""
		if line.Item != nil {
			name = line.Item.Name
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, price))
	}
	return "MATERIAL LOCADO ENTREGUES COM AVARIAS/MANCHADOS OU QUEBRADOS SERÁ COBRADO O VALOR TOTAL NA ENTREGA DO MESMO: " +
		strings.Join(parts, " / ")
}

// Clauses returns the contract clause texts for an order, in signing order
func Clauses(order *domain.Order) []string {
	clauses := make([]string, len(contractClauses))
	copy(clauses, contractClauses)
	clauses[4] = damageClause(order.Items)
	return clauses
}

// ContractText renders the rental contract as plain text
func ContractText(order *domain.Order, now time.Time) string {
	client := order.Client

	var b strings.Builder
	b.WriteString("CONTRATO DE LOCAÇÃO DE MATERIAIS\n\n")
	b.WriteString("LOCADOR:\n")
	fmt.Fprintf(&b, "%s\nCPF: %s\nEnd: %s\n\n", lessorName, lessorCPF, lessorAddress)
	b.WriteString("LOCATÁRIO:\n")
	fmt.Fprintf(&b, "%s\nCPF: %s\n", client.Name, client.CPF)
	fmt.Fprintf(&b, "Endereço: %s, %s - %s\n",
		deref(client.Address), deref(client.AddressNumber), deref(client.Neighborhood))
	fmt.Fprintf(&b, "Contato: %s\n\n", deref(client.Phone))
	fmt.Fprintf(&b, "Data de Retirada: %s às %s\n", order.PickupDate.Format("02/01/2006"), order.PickupTime)
	fmt.Fprintf(&b, "Data de Devolução: %s às %s\n", order.ReturnDate.Format("02/01/2006"), order.ReturnTime)
	fmt.Fprintf(&b, "Valor total da locação: R$ %s\n", order.TotalAmount.StringFixed(2))
	b.WriteString("Forma de pagamento: Via Pix (50% na reserva e o Restante na retirada)\n\n")
	b.WriteString("CLÁUSULAS\n\n")
	for i, clause := range Clauses(order) {
		fmt.Fprintf(&b, "%dº %s\n\n", i+1, clause)
	}
	b.WriteString("Estou ciente do contrato que li e aceito.\n\n")
	fmt.Fprintf(&b, "Palhoça - SC, %s\n\n", now.Format("02/01/2006"))
	b.WriteString("_______________________          _______________________\n")
	b.WriteString("        LOCADOR                        LOCATÁRIO\n")
	return b.String()
}

// ContractPDF renders the rental contract as a single page A4 PDF
func ContractPDF(w io.Writer, order *domain.Order, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(5, 5, 5)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 10

	pdf.SetFont("Times", "B", 12)
	pdf.CellFormat(contentWidth, 8, tr("CONTRATO DE LOCAÇÃO DE MATERIAIS"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Times", "", 9)
	client := order.Client

	pdf.CellFormat(contentWidth, 4, "LOCADOR:", "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr(fmt.Sprintf("%s - CPF: %s", lessorName, lessorCPF)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr("End: "+lessorAddress), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(contentWidth, 4, tr("LOCATÁRIO:"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr(fmt.Sprintf("%s - CPF: %s", client.Name, client.CPF)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr(fmt.Sprintf("Endereço: %s, %s - %s",
		deref(client.Address), deref(client.AddressNumber), deref(client.Neighborhood))), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr("Contato: "+deref(client.Phone)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(contentWidth, 4, tr(fmt.Sprintf("Data de Retirada: %s às %s",
		order.PickupDate.Format("02/01/2006"), order.PickupTime)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr(fmt.Sprintf("Data de Devolução: %s às %s",
		order.ReturnDate.Format("02/01/2006"), order.ReturnTime)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr(fmt.Sprintf("Valor total da locação: R$ %s", order.TotalAmount.StringFixed(2))), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr("Forma de pagamento: Via Pix (50% na reserva e o Restante na retirada)"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Times", "B", 9)
	pdf.CellFormat(contentWidth, 4, tr("CLÁUSULAS"), "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 9)
	pdf.Ln(2)

	for i, clause := range Clauses(order) {
		pdf.MultiCell(contentWidth, 4, tr(fmt.Sprintf("%dº %s", i+1, clause)), "", "J", false)
		pdf.Ln(2)
	}

	pdf.Ln(4)
	pdf.CellFormat(contentWidth, 4, tr("Estou ciente do contrato que li e aceito."), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.CellFormat(contentWidth, 4, tr(fmt.Sprintf("Palhoça - SC, %s", now.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.Ln(8)
	pdf.CellFormat(contentWidth, 4, "_______________________          _______________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(contentWidth, 4, tr("        LOCADOR                        LOCATÁRIO"), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// ReceiptPDF renders the pickup order handed to the client at collection time
func ReceiptPDF(w io.Writer, order *domain.Order) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, companyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(companyLine), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, companyPhone, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, companyEmail, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Ordem de Retirada", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Pedido N° %s", order.OrderNumber)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Data: %s", order.PickupDate.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Horário: %s", order.PickupTime)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	client := order.Client
	pdf.CellFormat(0, 6, "Dados do Cliente:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(15)
	pdf.CellFormat(0, 5, tr("Nome: "+client.Name), "", 1, "L", false, 0, "")
	if client.Phone != nil {
		pdf.SetX(15)
		pdf.CellFormat(0, 5, "Telefone: "+*client.Phone, "", 1, "L", false, 0, "")
	}
	if client.Email != nil {
		pdf.SetX(15)
		pdf.CellFormat(0, 5, "Email: "+*client.Email, "", 1, "L", false, 0, "")
	}
	if client.Address != nil {
		pdf.SetX(15)
		pdf.CellFormat(0, 5, tr("Endereço: "+*client.Address), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	widths := []float64{70, 40, 15, 30, 30}
	headers := []string{"Item", "Categoria", "Qtd", "Valor Unit.", "Total"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(139, 92, 246)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range order.Items {
		name, category := "", ""
		if line.Item != nil {
			name = line.Item.Name
			category = line.Item.Category
		}
		lineTotal := line.UnitPrice.Mul(decimalFromInt(line.Quantity))
		cells := []string{
			name,
			category,
			fmt.Sprintf("%d", line.Quantity),
			"R$ " + line.UnitPrice.StringFixed(2),
			"R$ " + lineTotal.StringFixed(2),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, fmt.Sprintf("Valor Total: R$ %s", order.TotalAmount.StringFixed(2)), "", 1, "L", false, 0, "")

	pdf.Ln(16)
	pdf.SetFont("Helvetica", "", 12)
	y := pdf.GetY()
	pdf.Text(15, y, "_____________________")
	pdf.Text(120, y, "_____________________")
	pdf.Text(15, y+8, tr("Assinatura do Cliente"))
	pdf.Text(120, y+8, tr("Assinatura "+companyName))

	return pdf.Output(w)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
