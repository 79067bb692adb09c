// Seed fills an empty GestorLotes database with realistic sample data:
// clients, described lots and the matching aggregate stock. Useful for
// demos and manual testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/SergioFerreira2020/GestorLotes/database"
	"github.com/SergioFerreira2020/GestorLotes/extractors"
	"github.com/SergioFerreira2020/GestorLotes/internal/config"
	"github.com/SergioFerreira2020/GestorLotes/server/services"
	"github.com/SergioFerreira2020/GestorLotes/stock"
)

var (
	categories = []string{"casaco", "camisola", "calças", "t-shirt", "vestido", "saia", "babygrow", "meias", "sapatos", "botas"}
	genders    = []string{"senhora", "homem", "menina", "menino", "bebé", "unissexo"}
	adultSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}
	childSizes = []string{"4-8 meses", "12-18 meses", "2 anos", "4 anos", "6 anos", "8 anos", "10-12 anos"}
	extras     = []string{"", "quente", "de inverno", "de verão", "em bom estado", "pouco uso"}
)

func main() {
	lots := flag.Int("lots", 60, "número de lotes a preencher")
	clients := flag.Int("clients", 8, "número de clientes a criar")
	seed := flag.Int64("seed", 0, "semente aleatória (0 = aleatória)")
	flag.Parse()

	gofakeit.Seed(*seed)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("✗ Erro ao carregar a configuração: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	store, err := database.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("✗ Erro ao abrir a base de dados: %v", err)
	}
	defer store.Close()

	ledger := stock.NewLedger(store, logger)
	extractor := extractors.NewExtractor(cfg.ShoeSizeMin, cfg.ShoeSizeMax)
	notifications := services.NewNotificationService(ledger, services.NopNotifier{}, cfg.LowStockLimit, logger)
	loteService := services.NewLoteService(store, ledger, extractor, notifications, logger, cfg.LoteCount)
	clientService := services.NewClientService(store, logger)

	ctx := context.Background()

	if *lots > cfg.LoteCount {
		*lots = cfg.LoteCount
	}

	for i := 0; i < *clients; i++ {
		input := services.ClientInput{
			Name:    gofakeit.Name(),
			Contact: fmt.Sprintf("9%08d", gofakeit.Number(0, 99999999)),
			Address: gofakeit.Street() + ", " + gofakeit.City(),
		}
		if gofakeit.Bool() {
			input.Notes = "Família com " + fmt.Sprint(gofakeit.Number(1, 4)) + " crianças"
		}
		if _, err := clientService.Create(ctx, input); err != nil {
			log.Fatalf("✗ Erro ao criar cliente: %v", err)
		}
	}
	log.Printf("✓ Criados %d clientes", *clients)

	matched := 0
	for i := 1; i <= *lots; i++ {
		id := fmt.Sprint(i)
		if _, err := loteService.UpdateField(ctx, id, services.FieldDescription, describeLot()); err != nil {
			log.Fatalf("✗ Erro a preencher o lote %s: %v", id, err)
		}
		lot, err := loteService.Get(ctx, id)
		if err != nil {
			log.Fatalf("✗ Erro a reler o lote %s: %v", id, err)
		}
		if extractor.Extract(lot.Description) != nil {
			matched++
		}
	}
	log.Printf("✓ Preenchidos %d lotes (%d com atributos reconhecidos)", *lots, matched)

	low, err := notifications.LowStock(ctx)
	if err != nil {
		log.Fatalf("✗ Erro a consultar o stock: %v", err)
	}
	log.Printf("✓ %d entradas de stock abaixo do limite %d", len(low), notifications.Threshold())
}

// describeLot composes a donation description the way volunteers type them,
// including the occasional line the extractor cannot classify.
func describeLot() string {
	if gofakeit.Number(0, 9) == 0 {
		return gofakeit.RandomString([]string{"roupa variada", "caixa mista", "brinquedos e roupa"})
	}

	category := gofakeit.RandomString(categories)
	gender := gofakeit.RandomString(genders)

	var size string
	switch {
	case category == "sapatos" || category == "botas":
		size = fmt.Sprint(gofakeit.Number(20, 45))
	case gender == "menina" || gender == "menino" || gender == "bebé":
		size = gofakeit.RandomString(childSizes)
	default:
		size = gofakeit.RandomString(adultSizes)
	}

	desc := fmt.Sprintf("%s %s %s", category, gender, size)
	if extra := gofakeit.RandomString(extras); extra != "" {
		desc = fmt.Sprintf("%s %s %s %s", category, extra, gender, size)
	}
	return desc
}
