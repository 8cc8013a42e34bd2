package suggest

// FallbackSuggestions is the deterministic suggestion set served when the
// model is unavailable or returns something unparseable. One entry per
// category, same order the prompt asks for. Tests and the orchestrator both
// reference this table; keep it as the single source of the fallback text.
var FallbackSuggestions = []string{
	"Restaurant: Local dining - Nearby cafes & restaurants | Check local listings",
	"Entertainment: Bowling/Arcades - Group fun activities | Check local listings",
	"Outdoor: Parks & trails - Fresh air & exercise | Check local listings",
	"Cultural: Museums & galleries - Art & history | Check local listings",
	"Shopping: Malls & markets - Browse & discover | Check local listings",
	"Nightlife: Bars & clubs - Evening socializing | Check local listings",
}
