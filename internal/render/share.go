package render

import (
	"fmt"

	"github.com/maqamat-app/maqamat/internal/catalog"
	"github.com/maqamat-app/maqamat/internal/scoring"
	"github.com/maqamat-app/maqamat/internal/station"
)

// ShareText formats a result as a short plain-text snippet suitable for
// pasting into a message or post.
func ShareText(res scoring.Result, st station.Station, c catalog.Catalog) string {
	return fmt.Sprintf("The Nine Maqāmāt Self-Assessment\nStation %d of 9 — %s (%s)\nScore: %d/%d\nBased on Sunan al-Muhtadīn by Imam al-Mawwāq",
		st.ID, st.Name, st.Category.Name(), res.TotalScore, c.MaxScore())
}
