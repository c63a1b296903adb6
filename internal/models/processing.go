package models

// Шаги обработки заказа внутри статуса Processing
const (
	StepWashed        = "Washed"
	StepSteamPressed  = "Steam Pressed/Ironed"
	StepFolded        = "Folded"
	StepOutForDeliver = "Out for Delivery"
)

// stepPrerequisite - предыдущий обязательный шаг для каждого шага обработки.
// Washed - первый шаг, у него предшественника нет.
var stepPrerequisite = map[string]string{
	StepWashed:        "",
	StepSteamPressed:  StepWashed,
	StepFolded:        StepSteamPressed,
	StepOutForDeliver: StepFolded,
}

// KnownStep проверяет, что метка шага обработки известна сервису
func KnownStep(step string) bool {
	_, ok := stepPrerequisite[step]
	return ok
}

// StepAllowed проверяет, что шаг идёт строго за последним выполненным
func StepAllowed(lastStep string, step string) bool {
	prev, ok := stepPrerequisite[step]
	if !ok {
		return false
	}
	return prev == lastStep
}

// StatusForStep - статус заказа, который влечёт за собой шаг обработки.
// Единственный такой шаг - "Out for Delivery", он переводит заказ
// в "For Delivery"; запись статуса добавляется в той же транзакции,
// что и запись шага.
func StatusForStep(step string) (string, bool) {
	if step == StepOutForDeliver {
		return OrderStatusForDelivery, true
	}
	return "", false
}

// ProcessingRequest - модель запроса добавления шага обработки, приходит извне
type ProcessingRequest struct {
	Step string `json:"step"`
}
