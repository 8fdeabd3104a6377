package http

import (
	"catalog-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListSwitches - Search the switch catalog with filters, sorting and pagination
// @Summary List mechanical keyboard switches
// @Description Filter switches by search text, brand, type, sound profile, tactility, force, price and availability; sort and paginate the result
// @Tags Catalog
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring on name, brand, description"
// @Param brands query []string false "Brand filter" collectionFormat(multi)
// @Param types query []string false "Switch type filter (LINEAR, TACTILE, CLICKY, SILENT)" collectionFormat(multi)
// @Param soundProfiles query []string false "Sound profile filter (QUIET, MODERATE, LOUD, THOCKY, CLACKY, CREAMY)" collectionFormat(multi)
// @Param tactility query []string false "Tactility filter (NONE, LIGHT, MEDIUM, HEAVY)" collectionFormat(multi)
// @Param minForce query number false "Minimum actuation force (grams-force, 0-200)"
// @Param maxForce query number false "Maximum actuation force (grams-force, 0-200)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param availability query string false "Pass true to hide unavailable switches"
// @Param sortBy query string false "Sort key (name, price, force, rating, newest)" default(name)
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param limit query int false "Items per page (1-100)" default(20)
// @Success 200 {object} listSwitchesResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/switches [get]
func (h *handler) ListSwitches(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processListSwitchesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "catalog.delivery.http.ListSwitches: processListSwitchesRequest failed: %v", err)
		response.Error(c, errInvalidFilter, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.ListSwitches(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "catalog.delivery.http.ListSwitches: usecase ListSwitches failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newListSwitchesResp(output)
	response.OK(c, resp)
}
