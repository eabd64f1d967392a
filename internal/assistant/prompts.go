package assistant

// prompts.go collects the Spanish-language texts used by the assistant.
// Keeping them in one file makes them easy to tweak without touching the
// pipeline code.

const (
	// SystemInstruction frames every model invocation.  The medical-advice
	// prohibition is part of the base instruction, not only of the general
	// directive, so it holds even for statistics answers.
	SystemInstruction = "Eres un asistente experto en información general farmacéutica y en la administración del sistema Farma-Vida. " +
		"Responde de forma profesional, precisa y concisa. " +
		"Nunca ofrezcas consejos médicos ni diagnósticos; solo proporciona información general y factual."

	// NotConfiguredMessage names the missing setting so the operator can
	// fix it without reading logs.
	NotConfiguredMessage = "LLM no configurado. Establece OPENAI_API_KEY en las variables de entorno."

	// ProviderErrorMessage is shown when the provider call itself fails.
	// The underlying error goes to the log, never to the user.
	ProviderErrorMessage = "No se pudo contactar al servicio de IA. Revisa la configuración del proveedor e inténtalo de nuevo más tarde."

	// SafetyDeclinedMessage replaces output the provider's safety filter
	// blocked.  The interaction still counts as successful.
	SafetyDeclinedMessage = "Lo siento, mi respuesta fue bloqueada por las políticas de seguridad de contenido. Intenta reformular tu pregunta."

	// EmptyResponseMessage covers completions with no text and no safety flag.
	EmptyResponseMessage = "Lo siento, hubo un problema al generar la respuesta o la respuesta fue vacía."
)

const (
	directiveStats = "Responde usando exclusivamente las cifras del contexto de la base de datos, " +
		"de forma breve y directa, sin preámbulos."

	// directivePersonalData grounds the refusal purely in policy.  It must
	// never mention data availability, so the model cannot leak whether the
	// named person is registered.
	directivePersonalData = "Rechaza esta solicitud de datos personales. " +
		"Explica que la política de privacidad y protección de datos del sistema Farma-Vida " +
		"impide compartir información de personas concretas. " +
		"La negativa debe basarse únicamente en esa política, nunca en la disponibilidad o el estado de los datos solicitados."

	directiveGeneral = "Responde desde tu conocimiento general sin inventar cifras ni estadísticas del sistema. " +
		"Nunca ofrezcas consejos médicos ni diagnósticos."

	directiveDataUnavailable = "Discúlpate porque hay un problema temporal de acceso a los datos del sistema " +
		"e invita al usuario a intentarlo de nuevo más tarde. No inventes ninguna cifra."
)
