package reconciling

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// DefaultHistoryPageSize é o tamanho de página usado quando nenhum é configurado
const DefaultHistoryPageSize = 10

// Paginate fatia o histórico em páginas fixas para exibição. page começa em 1 e é
// ajustada para o intervalo válido.
func Paginate(entries []domain.HistoryEntry, page, pageSize int) domain.HistoryPage {
	if pageSize <= 0 {
		pageSize = DefaultHistoryPageSize
	}

	total := len(entries)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	pageEntries := make([]domain.HistoryEntry, 0, end-start)
	pageEntries = append(pageEntries, entries[start:end]...)

	return domain.HistoryPage{
		Entries:    pageEntries,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
	}
}
