package constant

// SeedGreeting is the fixed first AI turn written when a diary's
// conversation is opened for the first time.
const SeedGreeting = "안녕하세요! 오늘 하루 이야기를 들려주시면 함께 일기를 써드릴게요."

// SeedCandidates are the quick-reply suggestions returned alongside a
// freshly seeded transcript.
var SeedCandidates = []string{"친구", "가족", "그냥 일기써줘"}

// PhotoDefaultDescription is the placeholder stored when captioning is
// unavailable or fails. It carries no scene information, so the context
// builder treats it the same as an empty description.
const PhotoDefaultDescription = "사진이 포함된 일기입니다."

// PhotoCaptionPrompt asks the vision model for a short Korean caption.
const PhotoCaptionPrompt = `이 사진을 보고 사진을 설명할 수 있는 한국어 2-3문장으로 작성해주세요.
사용자가 무엇을 하였을지 추측하는데 도움이 되도록 작성하시오.`
