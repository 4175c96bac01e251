// Package memory implementa los puertos de lectura sobre un conjunto de datos en memoria
// cargado desde YAML. Los datos no cambian después de la carga, por lo que los
// repositorios son seguros para uso concurrente sin bloqueos.
package memory

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

//go:embed sample.yaml
var sampleYAML []byte

const dateLayout = "2006-01-02"

// Fixture es el conjunto de datos completo tal como se lee del YAML.
type Fixture struct {
	DemoUser        UserRecord       `yaml:"demo_user"`
	OpeningBalances map[string]int64 `yaml:"opening_balances"`
	Bases           []BaseRecord     `yaml:"bases"`
	Assets          []AssetRecord    `yaml:"assets"`
	Transfers       []TransferRecord `yaml:"transfers"`
	Movements       []MovementRecord `yaml:"movements"`
}

// UserRecord usuario de demostración con su rol y base asignada.
type UserRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`
	Base string `yaml:"base"`
}

// BaseRecord base militar tal como aparece en el YAML.
type BaseRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// AssetRecord activo del inventario; AssignedTo solo aplica a activos asignados.
type AssetRecord struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Category   string `yaml:"category"`
	Quantity   int64  `yaml:"quantity"`
	Base       string `yaml:"base"`
	Status     string `yaml:"status"`
	AssignedTo string `yaml:"assigned_to,omitempty"`
}

// TransferRecord transferencia entre bases con fecha en formato YYYY-MM-DD.
type TransferRecord struct {
	ID          string `yaml:"id"`
	AssetID     string `yaml:"asset_id"`
	AssetName   string `yaml:"asset_name"`
	Quantity    int64  `yaml:"quantity"`
	FromBase    string `yaml:"from_base"`
	ToBase      string `yaml:"to_base"`
	Date        string `yaml:"date"`
	Status      string `yaml:"status"`
	InitiatedBy string `yaml:"initiated_by"`
}

// MovementRecord entrada del ledger de movimientos; RelatedTransferID enlaza la transferencia de origen.
type MovementRecord struct {
	ID                string `yaml:"id"`
	AssetID           string `yaml:"asset_id"`
	AssetName         string `yaml:"asset_name"`
	Category          string `yaml:"category"`
	Type              string `yaml:"type"`
	Quantity          int64  `yaml:"quantity"`
	Base              string `yaml:"base"`
	Date              string `yaml:"date"`
	RelatedTransferID string `yaml:"related_transfer_id,omitempty"`
}

// LoadFixture lee el YAML de path; con path vacío usa el conjunto de demostración embebido.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return ParseFixture(sampleYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer fixture %s: %w", path, err)
	}
	return ParseFixture(data)
}

// ParseFixture decodifica y valida el YAML.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decodificar fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate aplica las precondiciones de ingesta que el motor asume:
// fechas yyyy-MM-dd, cantidades no negativas, tipos conocidos y
// pares transfer-in/transfer-out coherentes con su traslado.
func (f *Fixture) Validate() error {
	var errs []error
	transfers := make(map[string]TransferRecord, len(f.Transfers))
	for _, t := range f.Transfers {
		transfers[t.ID] = t
	}
	seen := make(map[string]bool, len(f.Movements))
	for _, m := range f.Movements {
		if m.ID == "" || seen[m.ID] {
			errs = append(errs, fmt.Errorf("movimiento %q: id vacío o duplicado", m.ID))
		}
		seen[m.ID] = true
		if _, err := time.Parse(dateLayout, m.Date); err != nil {
			errs = append(errs, fmt.Errorf("movimiento %s: fecha %q no es yyyy-MM-dd", m.ID, m.Date))
		}
		if m.Quantity < 0 {
			errs = append(errs, fmt.Errorf("movimiento %s: cantidad negativa", m.ID))
		}
		switch m.Type {
		case entity.MovementTypePurchase, entity.MovementTypeAssignment, entity.MovementTypeExpenditure:
		case entity.MovementTypeTransferIn, entity.MovementTypeTransferOut:
			if err := checkTransferLeg(m, transfers); err != nil {
				errs = append(errs, err)
			}
		default:
			errs = append(errs, fmt.Errorf("movimiento %s: tipo %q desconocido", m.ID, m.Type))
		}
	}
	for id, v := range f.OpeningBalances {
		if v < 0 {
			errs = append(errs, fmt.Errorf("saldo de apertura de %s negativo", id))
		}
	}
	return errors.Join(errs...)
}

func checkTransferLeg(m MovementRecord, transfers map[string]TransferRecord) error {
	if m.RelatedTransferID == "" {
		return nil
	}
	t, ok := transfers[m.RelatedTransferID]
	if !ok {
		return fmt.Errorf("movimiento %s: traslado %s inexistente", m.ID, m.RelatedTransferID)
	}
	if t.Quantity != m.Quantity {
		return fmt.Errorf("movimiento %s: cantidad %d distinta a la del traslado %s (%d)", m.ID, m.Quantity, t.ID, t.Quantity)
	}
	want := t.FromBase
	if m.Type == entity.MovementTypeTransferIn {
		want = t.ToBase
	}
	if m.Base != want {
		return fmt.Errorf("movimiento %s: base %s no corresponde al traslado %s (%s)", m.ID, m.Base, t.ID, want)
	}
	return nil
}

func (r MovementRecord) toEntity() entity.AssetMovement {
	return entity.AssetMovement{
		ID:                r.ID,
		AssetID:           r.AssetID,
		AssetName:         r.AssetName,
		Category:          r.Category,
		Type:              r.Type,
		Quantity:          r.Quantity,
		Base:              r.Base,
		Date:              r.Date,
		RelatedTransferID: r.RelatedTransferID,
	}
}

func (r AssetRecord) toEntity() *entity.Asset {
	return &entity.Asset{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		Quantity:   r.Quantity,
		Base:       r.Base,
		Status:     r.Status,
		AssignedTo: r.AssignedTo,
	}
}

func (r TransferRecord) toEntity() *entity.Transfer {
	return &entity.Transfer{
		ID:          r.ID,
		AssetID:     r.AssetID,
		AssetName:   r.AssetName,
		Quantity:    r.Quantity,
		FromBase:    r.FromBase,
		ToBase:      r.ToBase,
		Date:        r.Date,
		Status:      r.Status,
		InitiatedBy: r.InitiatedBy,
	}
}
